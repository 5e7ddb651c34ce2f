package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobportal/apiserver/types"
	"github.com/lib/pq"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func jobColumns() []string {
	return []string{
		"job_id", "user_id", "company_name", "logo_url", "job_position",
		"monthly_salary", "job_type", "remote_office", "location",
		"job_description", "about_company", "skills_required",
		"additional_info", "job_posted",
	}
}

func jobRow(id string) *sqlmock.Rows {
	return sqlmock.NewRows(jobColumns()).AddRow(
		id, "owner-1", "Acme", "", "Eng", "", "", "", "", "", "", "", "", "28-08-2026",
	)
}

func TestJobCreate_UniqueViolationIsConflict(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO job_list").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewJobRepository(db)
	_, err := repo.Create(context.Background(), types.Job{
		ID: "job-1", UserID: "owner-1", CompanyName: "Acme", JobPosition: "Eng",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestJobGet_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM job_list").
		WillReturnError(sql.ErrNoRows)

	repo := NewJobRepository(db)
	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestJobList_ReturnsTotalWithPage(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM job_list")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	rows := sqlmock.NewRows(jobColumns())
	for _, id := range []string{"job-11", "job-12", "job-13", "job-14", "job-15"} {
		rows.AddRow(id, "owner-1", "Acme "+id, "", "Eng", "", "", "", "", "", "", "", "", "28-08-2026")
	}
	mock.ExpectQuery("SELECT .+ FROM job_list").
		WithArgs(10, 10).
		WillReturnRows(rows)

	repo := NewJobRepository(db)
	jobs, total, err := repo.List(context.Background(), 10, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 15 {
		t.Fatalf("total mismatch: got %d want 15", total)
	}
	if len(jobs) != 5 {
		t.Fatalf("page size mismatch: got %d want 5", len(jobs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestJobUpdate_SingleFieldSQL(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE job_list SET location = $1 WHERE job_id = $2")).
		WithArgs("Berlin", "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewJobRepository(db)
	err := repo.Update(context.Background(), "job-1", types.JobUpdate{Location: "Berlin"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestJobUpdate_MultipleFieldsKeepStableOrder(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE job_list SET company_name = $1, location = $2 WHERE job_id = $3")).
		WithArgs("Acme", "Berlin", "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewJobRepository(db)
	err := repo.Update(context.Background(), "job-1", types.JobUpdate{
		CompanyName: "Acme",
		Location:    "Berlin",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestJobUpdate_NoFields(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := NewJobRepository(db)
	if err := repo.Update(context.Background(), "job-1", types.JobUpdate{}); err == nil {
		t.Fatal("expected error for empty update")
	}
}

func TestJobUpdate_MissingIDIsSilentNoop(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec("UPDATE job_list SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewJobRepository(db)
	if err := repo.Update(context.Background(), "ghost", types.JobUpdate{Location: "Berlin"}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestJobDelete_MissingIDIsSilentNoop(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_list WHERE job_id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewJobRepository(db)
	if err := repo.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestJobGet_ScansAllColumns(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM job_list").
		WithArgs("job-1").
		WillReturnRows(jobRow("job-1"))

	repo := NewJobRepository(db)
	job, err := repo.Get(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if job.CompanyName != "Acme" || job.JobPosted != "28-08-2026" {
		t.Fatalf("unexpected job: %+v", job)
	}
}

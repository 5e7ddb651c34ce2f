package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobportal/apiserver/types"
	"github.com/lib/pq"
)

func TestApplicationCreate_UniqueViolationIsConflict(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO applied_jobs").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewApplicationRepository(db)
	_, err := repo.Create(context.Background(), types.Application{
		ID: "a1", UserID: "u1", JobID: "job-1",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestApplicationListByUser_OrdersByAppliedDateDesc(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"apply_id", "user_id", "job_id", "company_name", "logo_url",
		"job_position", "applied_date",
	}).
		AddRow("a2", "u1", "job-2", "Beta", "", "Eng", "28-08-2026").
		AddRow("a1", "u1", "job-1", "Acme", "", "Eng", "27-08-2026")

	mock.ExpectQuery("SELECT .+ FROM applied_jobs .+ ORDER BY applied_date DESC").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewApplicationRepository(db)
	applications, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(applications) != 2 {
		t.Fatalf("length mismatch: got %d want 2", len(applications))
	}
	if applications[0].ID != "a2" {
		t.Fatalf("newest first expected, got %q", applications[0].ID)
	}
}

func TestApplicationDelete_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM applied_jobs WHERE apply_id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewApplicationRepository(db)
	if err := repo.Delete(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestApplicationDelete_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM applied_jobs WHERE apply_id = $1")).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewApplicationRepository(db)
	if err := repo.Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

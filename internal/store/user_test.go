package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jobportal/apiserver/types"
	"github.com/lib/pq"
)

func TestUserCreate_UniqueViolationIsConflict(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewUserRepository(db)
	_, err := repo.Create(context.Background(), types.User{
		ID: "u1", Username: "alice", Email: "alice@x.com", PasswordHash: "h",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestUserCreate_OtherErrorPassesThrough(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	repo := NewUserRepository(db)
	_, err := repo.Create(context.Background(), types.User{ID: "u1"})
	if err == nil || errors.Is(err, ErrConflict) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepository(db)
	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

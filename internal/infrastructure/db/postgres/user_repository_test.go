package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casedesk/casedesk/internal/core/domain"
)

var userRows = []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@example.com", "hash", "admin", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	repo := NewUserRepository(db)
	created, err := repo.Create(context.Background(), &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	repo := NewUserRepository(db)
	_, err = repo.Create(context.Background(), &domain.User{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE username =").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(int64(1), "alice", "alice@example.com", "hash", "admin", now, now))

	repo := NewUserRepository(db)
	got, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "admin", got.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id =").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userRows))

	repo := NewUserRepository(db)
	_, err = repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

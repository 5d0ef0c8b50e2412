package sessions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestPostgresRepository_Create(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	now := time.Now()
	date := now.Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{"id", "subject", "session_date", "student_id", "tutor_id", "created_at", "updated_at"}).
		AddRow("s1", "Math", date, "u1", "u2", now, now)

	mock.ExpectQuery(`INSERT INTO sessions`).
		WithArgs(sqlmock.AnyArg(), "Math", date, "u1", "u2").
		WillReturnRows(rows)

	session, err := repo.Create(context.Background(), &Session{
		Subject: "Math", Date: date, StudentID: "u1", TutorID: "u2",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.True(t, session.Date.Equal(date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO sessions`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), &Session{
		Subject: "Math", Date: time.Now().Add(time.Hour), StudentID: "u1", TutorID: "u2",
	})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/dbx"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *Session) (*Session, error) {

	query :=
		`INSERT INTO sessions (id, subject, session_date, student_id, tutor_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, subject, session_date, student_id, tutor_id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), session.Subject, session.Date, session.StudentID, session.TutorID).
		Scan(&session.ID, &session.Subject, &session.Date, &session.StudentID, &session.TutorID,
			&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

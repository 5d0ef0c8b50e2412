package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
)

// Service validates booking requests and persists sessions. It depends on
// the user directory's repository for the existence and role checks.
type Service struct {
	repo      Repository
	usersRepo users.Repository
}

func NewService(repo Repository, usersRepo users.Repository) *Service {
	return &Service{repo: repo, usersRepo: usersRepo}
}

// CreateParams carries a raw booking request. Date is an RFC 3339 timestamp.
type CreateParams struct {
	Subject   string
	Date      string
	StudentID string
	TutorID   string
}

// Create runs the booking chain as a strict, short-circuiting sequence:
// shape check, strict-future date check, existence check of both users,
// role checks (student first), persist. The session is written with the
// date parsed during validation.
//
// The existence/role checks and the final write are not transactional: a
// user deleted in between leaves a dangling reference, which is accepted.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Session, error) {

	if params.Subject == "" || params.Date == "" || params.StudentID == "" || params.TutorID == "" {
		return nil, ErrAllFieldsRequired
	}

	date, err := time.Parse(time.RFC3339, params.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	now := time.Now()
	if !date.After(now) {
		return nil, &DateNotFutureError{Provided: date, Current: now}
	}

	student, err := s.lookupUser(ctx, params.StudentID)
	if err != nil {
		return nil, err
	}
	tutor, err := s.lookupUser(ctx, params.TutorID)
	if err != nil {
		return nil, err
	}

	if student == nil || tutor == nil {
		return nil, &UsersNotFoundError{
			StudentExists: student != nil,
			TutorExists:   tutor != nil,
		}
	}

	if student.Role != users.RoleStudent {
		return nil, ErrStudentRoleMismatch
	}
	if tutor.Role != users.RoleTutor {
		return nil, ErrTutorRoleMismatch
	}

	session := &Session{
		Subject:   params.Subject,
		Date:      date,
		StudentID: student.ID,
		TutorID:   tutor.ID,
	}

	session, err = s.repo.Create(ctx, session)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrSubjectExists
		}
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return session, nil
}

// lookupUser returns (nil, nil) when the user does not exist, so the caller
// can report both lookups independently.
func (s *Service) lookupUser(ctx context.Context, id string) (*users.User, error) {
	user, err := s.usersRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	return user, nil
}

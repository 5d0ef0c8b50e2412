package sessions

import (
	"errors"
	"time"
)

var (
	// Validation errors.
	ErrAllFieldsRequired   = errors.New("please provide subject, date, studentId, and tutorId")
	ErrInvalidDate         = errors.New("date must be a valid RFC 3339 timestamp")
	ErrStudentRoleMismatch = errors.New("the provided studentId does not belong to a student")
	ErrTutorRoleMismatch   = errors.New("the provided tutorId does not belong to a tutor")

	// Conflict errors.
	ErrSubjectExists = errors.New("session with this subject already exists")
)

// DateNotFutureError rejects a session date that is not strictly later than
// the wall clock at validation time. Equal timestamps are rejected too.
type DateNotFutureError struct {
	Provided time.Time
	Current  time.Time
}

func (e *DateNotFutureError) Error() string {
	return "session date must be in the future"
}

// UsersNotFoundError reports independently which of the two referenced users
// exists, so a caller can tell "both missing" from "one missing".
type UsersNotFoundError struct {
	StudentExists bool
	TutorExists   bool
}

func (e *UsersNotFoundError) Error() string {
	return "one or both users do not exist"
}

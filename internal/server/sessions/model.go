// Package sessions implements session booking: validating a booking
// request against the user directory and persisting the session.
package sessions

import "time"

// Session is a scheduled tutoring engagement between one student and one
// tutor at a future date. The referenced users are checked at creation time
// only; a later user deletion may leave a dangling reference.
type Session struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Date      time.Time `json:"date"`
	StudentID string    `json:"studentId"`
	TutorID   string    `json:"tutorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

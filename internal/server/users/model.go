// Package users implements the user directory: registration, partial
// updates, and deletion of students and tutors.
package users

import (
	"strings"
	"time"
)

// The role set is closed; any other value is rejected at validation time.
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

// User is a registered person able to take part in tutoring sessions.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeEmail lowercases an email address and trims surrounding
// whitespace. Every lookup and write uses the normalized form, so addresses
// differing only in case or whitespace count as duplicates.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTutor
}

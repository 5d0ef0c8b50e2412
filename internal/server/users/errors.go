package users

import "errors"

var (
	// Validation errors.
	ErrUsernameAndEmailRequired = errors.New("please provide username and email")
	ErrInvalidRole              = errors.New("is not a valid role")
	ErrNoFieldsToUpdate         = errors.New("no fields to update")

	// Conflict errors.
	ErrEmailExists = errors.New("user with this email already exists")
)

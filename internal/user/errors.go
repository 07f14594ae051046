package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidInput       = errors.New("invalid user input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("no user signed in")
)

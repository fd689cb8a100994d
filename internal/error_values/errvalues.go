package errorvalues

import "errors"

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrUserNotFound    = errors.New("user doesn't exists")
	ErrInvalidDate     = errors.New("invalid date")
)

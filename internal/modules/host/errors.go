package host

import "errors"

var (
	ErrNotFound      = errors.New("host not found")
	ErrUsernameTaken = errors.New("username already taken")
)

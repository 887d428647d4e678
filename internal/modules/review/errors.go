package review

import "errors"

var (
	ErrNotFound         = errors.New("review not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
)

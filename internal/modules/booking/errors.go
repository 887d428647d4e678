package booking

import "errors"

var (
	ErrNotFound         = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidDates     = errors.New("checkout must be after checkin")
)

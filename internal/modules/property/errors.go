package property

import "errors"

var (
	ErrNotFound     = errors.New("property not found")
	ErrHostNotFound = errors.New("host not found")
)

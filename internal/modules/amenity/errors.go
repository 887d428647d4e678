package amenity

import "errors"

var (
	ErrNotFound      = errors.New("amenity not found")
	ErrAlreadyExists = errors.New("amenity already exists")
)

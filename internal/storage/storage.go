package storage

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrOutsideRoot  = errors.New("path escapes storage root")
)

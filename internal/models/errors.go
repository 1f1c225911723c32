package models

import "errors"

// Content errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidProject  = errors.New("invalid project entry")
)

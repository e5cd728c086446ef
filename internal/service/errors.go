package service

import "errors"

// Common service errors
var (
	ErrPageNotFound    = errors.New("page not found")
	ErrInvalidQuestion = errors.New("invalid question")
)

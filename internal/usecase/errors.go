package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyPlay    = errors.New("play group has no frames")
)

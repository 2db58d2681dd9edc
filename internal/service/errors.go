package service

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNoProfile    = errors.New("no profile found (run `dhyan init` first)")
)

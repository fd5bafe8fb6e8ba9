package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAlreadyExists    = errors.New("already exists")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrCategoryInUse    = errors.New("category still has products")
)

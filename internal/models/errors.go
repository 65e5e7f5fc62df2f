package models

import (
	"errors"
)

var (
	ErrResourceNotFound = errors.New("there is no")
	ErrBudgetInvalid    = errors.New("budget validation failed")
	ErrInvalidID        = errors.New("cast to UUID failed for value")
	ErrUnknownDriver    = errors.New("unknown database driver")
)

package domain

import "errors"

var (
	ErrCarNotFound      = errors.New("car not found")
	ErrCategoryNotFound = errors.New("car category not found")
	ErrUnratedAge       = errors.New("customer age is not covered by any tax bracket")
	ErrInvalidCategory  = errors.New("car category has no candidate cars")
	ErrInvalidDuration  = errors.New("number of days must not be negative")
)

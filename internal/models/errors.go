package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrDescriptionRequired = errors.New("a description is required")
	ErrMonthRequired       = errors.New("a month is required")
	ErrDateRequired        = errors.New("a date is required")
	ErrAmountNegative      = errors.New("the amount must not be negative")
	ErrUserEmailRequired   = errors.New("an email address is required")
	ErrUserEmailNotUnique  = errors.New("a user with this email address already exists")
)

package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrScheduleNotFound   = errors.New("schedule entry not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrPastDate           = errors.New("cannot modify meals for previous days")
	ErrAccessDenied       = errors.New("access denied")
	ErrUserBanned         = errors.New("user is banned")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidWeekday     = errors.New("invalid weekday name")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrInvalidCategory    = errors.New("invalid item category")
	ErrDatabaseError      = errors.New("database error")
)

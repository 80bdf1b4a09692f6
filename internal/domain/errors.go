package domain

import "errors"

var (
	ErrInvalidWindow         = errors.New("invalid reporting window")
	ErrWindowTooLong         = errors.New("reporting window too long")
	ErrInvalidDayValue       = errors.New("invalid recurrence day value")
	ErrUnsupportedRecurrence = errors.New("unsupported recurrence")
	ErrUnknownRecurrenceKind = errors.New("unknown recurrence kind")
	ErrUnknownCardSource     = errors.New("unknown card source")
)

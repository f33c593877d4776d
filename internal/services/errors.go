package services

import "errors"

var (
	ErrRecordNotFound          = errors.New("record not found")
	ErrPeriodRangeInvalid      = errors.New("period start must not be after its end")
	ErrPeriodOverlap           = errors.New("period overlaps an existing record")
	ErrCycleLengthOutOfRange   = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange  = errors.New("period length out of range")
	ErrOvulationOutcomeInvalid = errors.New("ovulation test outcome invalid")
	ErrPillPackageInvalid      = errors.New("pill package invalid")
	ErrPregnancyInvalid        = errors.New("pregnancy invalid")
	ErrPregnancyNotFound       = errors.New("no current pregnancy")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrEmailTaken              = errors.New("email already registered")
	ErrRoleInvalid             = errors.New("role must be owner or partner")
)

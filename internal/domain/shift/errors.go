package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftDateTaken     = errors.New("a shift already exists for this date")
	ErrShiftVerified      = errors.New("verified shift cannot be edited")
	ErrInvalidTransition  = errors.New("invalid shift status transition")
	ErrEmployeeNotOnShift = errors.New("employee did not hold a seat on this shift")
)

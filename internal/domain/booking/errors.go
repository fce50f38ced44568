package booking

import "errors"

var (
	ErrDatesConflict = errors.New("selected dates conflict with an existing booking")
	ErrInvalidDates  = errors.New("invalid checkin/checkout dates")
)

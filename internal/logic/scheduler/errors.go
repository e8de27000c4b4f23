package scheduler

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid schedule")
	ErrInvalidAction   = errors.New("invalid action")
	ErrInvalidTarget   = errors.New("invalid target")
	ErrUnsupportedJob  = errors.New("unsupported job")
)

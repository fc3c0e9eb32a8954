package scheduledtask

import "errors"

var (
	ErrTaskNotFound    = errors.New("scheduled task not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidSchedule = errors.New("invalid schedule")
)

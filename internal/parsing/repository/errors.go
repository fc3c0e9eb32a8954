package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert audit log")
	ErrFailedToList   = errors.New("failed to list audit logs")
	ErrFailedToDelete = errors.New("failed to delete audit logs")
)

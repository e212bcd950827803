package dao

import (
	"errors"
)

var (
	// ErrNotFound is returned when a looked up row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrStatusConflict is returned when a conditional status update matched no row
	ErrStatusConflict = errors.New("application status changed concurrently")
)

package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRange    = errors.New("invalid range")
	ErrNoActiveSession = errors.New("no active session")
	ErrNoExportData    = errors.New("no data to export")
)

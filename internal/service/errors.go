package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrArchiveDisabled  = errors.New("document archive is not configured")
	ErrDuplicateNumber  = errors.New("document number already issued")
)

package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrVersionConflict signals a lost compare-and-swap on the account
	// version column; callers re-read and retry.
	ErrVersionConflict = errors.New("account version conflict")
)

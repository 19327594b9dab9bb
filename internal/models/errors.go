package models

import "errors"

// Ledger error kinds. Callers match them with errors.Is.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyOwned        = errors.New("database already has an owner")
	ErrInvalidQuota        = errors.New("invalid quota")
	ErrInvalidUsage        = errors.New("usage values must be non-negative")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrConstraintViolation = errors.New("constraint violation")
)

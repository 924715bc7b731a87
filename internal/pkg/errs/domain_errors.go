package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Authorization
	ErrLoginRequired = errors.New("login required")
	ErrForbidden     = errors.New("forbidden")

	// Lookups
	ErrServiceNotFound     = errors.New("service not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrProfileNotFound     = errors.New("profile not found")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)

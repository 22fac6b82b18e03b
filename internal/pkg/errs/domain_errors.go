package errs

import "errors"

// Taxonomy sentinels. Usecases mark concrete errors with one of these so the
// handler layer can pick a status code without knowing every domain error.
var (
	ErrValidation  = errors.New("validation failed")
	ErrIntegrity   = errors.New("integrity violation")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failure")
)

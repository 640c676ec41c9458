package ports

import "errors"

// Shared repository sentinels; adapters translate driver errors into these
// so usecases and the HTTP layer never import storage packages.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

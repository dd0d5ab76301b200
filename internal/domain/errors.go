package domain

import "errors"

// Sentinel errors shared by the pipelines. Callers classify failures with
// errors.Is and decide whether they are fatal.
var (
	// ErrStoreNotFound means no history store exists at the expected location.
	ErrStoreNotFound = errors.New("history store not found")

	// ErrStoreUnavailable means the history store exists but cannot be
	// opened or queried.
	ErrStoreUnavailable = errors.New("history store unavailable")

	// ErrValidation covers malformed URLs, disallowed schemes and
	// oversized inputs. Always rejected before any I/O happens.
	ErrValidation = errors.New("validation failed")

	// ErrExportIO covers filesystem failures while writing export files.
	ErrExportIO = errors.New("export write failed")

	// ErrNetwork covers timeouts, connection failures, HTTP error statuses
	// and redirect loops during title fetching.
	ErrNetwork = errors.New("network failure")
)

package services

import "errors"

// Error kinds surfaced by ledger and goal operations. Handlers match them
// with errors.Is to pick a status code; everything else is a 500.
var (
	// ErrValidation: bad user input (unknown food, non-positive or
	// non-finite amount). No state changed.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound: the referenced record does not exist — an entry absent
	// from the in-memory ledger (the caller's view is stale; recovery is
	// a reload) or an unknown user.
	ErrNotFound = errors.New("not found")

	// ErrPersistence: the store round trip failed. In-memory state is
	// exactly as it was before the attempted mutation.
	ErrPersistence = errors.New("store request failed")

	// ErrLoad: fetching entries failed. The ledger keeps its last known
	// good contents rather than clearing to an artificially-zeroed view.
	ErrLoad = errors.New("load failed")
)

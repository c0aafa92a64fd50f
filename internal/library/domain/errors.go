package domain

import "errors"

// Error taxonomy surfaced by the library usecase. Callers translate these
// into transport-level responses; nothing below this layer retries or
// swallows a failure.
var (
	// ErrStoreUnavailable wraps any failure of the underlying document
	// store call itself.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrNotFound means the requested user, playlist, or user/playlist
	// pair does not exist. An empty read is indistinguishable from a
	// missing document and is reported the same way.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the requester is not the playlist's owner.
	ErrUnauthorized = errors.New("requested playlist does not belong to user")
)

package repository

import (
	"context"

	librarydomain "merger-backend/internal/library/domain"
)

// DocumentStore is the storage collaborator: a remote document database
// addressed by (collection, id), with partial-field merge writes and
// atomic single map-entry updates. The per-document write is the only
// atomic unit it guarantees; nothing here spans two documents.
type DocumentStore interface {
	// GetDocument returns the document's fields, or nil if it is absent.
	GetDocument(ctx context.Context, collection, id string) (map[string]any, error)
	// SetDocument creates the document or merges the given fields into it.
	SetDocument(ctx context.Context, collection, id string, fields map[string]any) error
	// SetDocumentField upserts one entry of a map-valued field, creating
	// the document and the field as needed.
	SetDocumentField(ctx context.Context, collection, id, field, subkey string, value any) error
	// GetDocumentField returns a map-valued field, or nil if the document
	// or the field is absent.
	GetDocumentField(ctx context.Context, collection, id, field string) (map[string]any, error)
	// DeleteDocumentField removes one entry of a map-valued field. Absent
	// document, field, or entry is not an error.
	DeleteDocumentField(ctx context.Context, collection, id, field, subkey string) error
}

// LibraryRepository is the store-facing surface of the relationship
// manager. Every method maps onto a single DocumentStore call; any store
// failure comes back wrapped in domain.ErrStoreUnavailable.
type LibraryRepository interface {
	// UpsertUser ensures the user document exists; it never overwrites
	// fields already present.
	UpsertUser(ctx context.Context, id string) error
	SetSpotifyRefresh(ctx context.Context, id, token string) error
	GetUser(ctx context.Context, id string) (*librarydomain.User, error)
	CreatePlaylist(ctx context.Context, playlist *librarydomain.Playlist) error
	GetPlaylist(ctx context.Context, id string) (*librarydomain.Playlist, error)
	// PlaylistSet returns the user's active or inactive membership set.
	// Absent document or field is an empty set, not an error.
	PlaylistSet(ctx context.Context, userID string, active bool) (map[string]bool, error)
	AddToSet(ctx context.Context, userID, playlistID string, active bool) error
	RemoveFromSet(ctx context.Context, userID, playlistID string, active bool) error
}

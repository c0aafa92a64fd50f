package usecase

import (
	"context"

	librarydomain "merger-backend/internal/library/domain"
)

// LibraryUsecase tracks the relationship between users and their
// generated playlists: registration, Spotify credential storage,
// playlist creation, active/inactive membership, and ownership-checked
// reads. All parameters and results are plain identifiers and records;
// no transport types appear here.
type LibraryUsecase interface {
	// RegisterUser creates the user document if absent. Idempotent: a
	// repeat call never erases the credential or the playlist sets.
	RegisterUser(ctx context.Context, id string) (string, error)
	// SetCredential merges the Spotify refresh token into the user
	// document, leaving the playlist sets untouched.
	SetCredential(ctx context.Context, id, token string) (string, error)
	// GetUser returns the user's credential. The playlist sets are not
	// exposed. An absent user is domain.ErrNotFound.
	GetUser(ctx context.Context, id string) (*librarydomain.User, error)
	// CreatePlaylist writes the playlist document, then adds its ID to
	// the owner's active set. The two writes are not transactional: the
	// first committing while the second fails leaves an orphan playlist
	// unreachable from the owner's sets. An absent owner is created
	// implicitly by the membership upsert.
	CreatePlaylist(ctx context.Context, id, owner string, artists []string) error
	// ListPlaylists resolves every playlist in the user's active and
	// inactive sets, active entries first. Resolution is sequential and
	// fail-fast: the first error aborts the whole listing.
	ListPlaylists(ctx context.Context, userID string) ([]librarydomain.PlaylistEntry, error)
	// GetPlaylistArtists returns the playlist's artist IDs only when the
	// requester is its owner. An absent playlist is domain.ErrNotFound; a
	// foreign one is domain.ErrUnauthorized — never conflated.
	GetPlaylistArtists(ctx context.Context, playlistID, requesterID string) ([]string, error)
	// SetPlaylistActiveness moves the playlist between the user's active
	// and inactive sets. Requesting the current state is a no-op; a
	// playlist the user does not have is domain.ErrNotFound. The move is
	// add-to-destination then remove-from-source, so an interrupted call
	// leaves the ID in both sets (recoverable), never in neither.
	SetPlaylistActiveness(ctx context.Context, userID, playlistID string, active bool) error
}

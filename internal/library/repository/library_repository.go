package repository

import (
	"context"
	"fmt"

	librarydomain "merger-backend/internal/library/domain"
)

// Collection and field names mirror the deployed Firestore schema.
const (
	usersCollection     = "users"
	playlistsCollection = "playlists"

	fieldSpotifyRefresh    = "spotifyRefresh"
	fieldActivePlaylists   = "active-playlists"
	fieldInactivePlaylists = "inactive-playlists"
	fieldOwner             = "user"
	fieldArtists           = "artists"
)

// libraryRepository implements LibraryRepository over a DocumentStore.
type libraryRepository struct {
	store DocumentStore
}

// NewLibraryRepository creates a new instance of libraryRepository
func NewLibraryRepository(store DocumentStore) LibraryRepository {
	return &libraryRepository{
		store: store,
	}
}

func (r *libraryRepository) UpsertUser(ctx context.Context, id string) error {
	if err := r.store.SetDocument(ctx, usersCollection, id, map[string]any{}); err != nil {
		return fmt.Errorf("%w: upsert users/%s: %v", librarydomain.ErrStoreUnavailable, id, err)
	}
	return nil
}

func (r *libraryRepository) SetSpotifyRefresh(ctx context.Context, id, token string) error {
	fields := map[string]any{fieldSpotifyRefresh: token}
	if err := r.store.SetDocument(ctx, usersCollection, id, fields); err != nil {
		return fmt.Errorf("%w: set users/%s.%s: %v", librarydomain.ErrStoreUnavailable, id, fieldSpotifyRefresh, err)
	}
	return nil
}

func (r *libraryRepository) GetUser(ctx context.Context, id string) (*librarydomain.User, error) {
	doc, err := r.store.GetDocument(ctx, usersCollection, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get users/%s: %v", librarydomain.ErrStoreUnavailable, id, err)
	}
	if doc == nil {
		return nil, nil
	}

	user := &librarydomain.User{ID: id}
	if token, ok := doc[fieldSpotifyRefresh].(string); ok {
		user.SpotifyRefresh = token
	}
	return user, nil
}

func (r *libraryRepository) CreatePlaylist(ctx context.Context, playlist *librarydomain.Playlist) error {
	fields := map[string]any{
		fieldOwner:   playlist.Owner,
		fieldArtists: playlist.Artists,
	}
	if err := r.store.SetDocument(ctx, playlistsCollection, playlist.ID, fields); err != nil {
		return fmt.Errorf("%w: create playlists/%s: %v", librarydomain.ErrStoreUnavailable, playlist.ID, err)
	}
	return nil
}

func (r *libraryRepository) GetPlaylist(ctx context.Context, id string) (*librarydomain.Playlist, error) {
	doc, err := r.store.GetDocument(ctx, playlistsCollection, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get playlists/%s: %v", librarydomain.ErrStoreUnavailable, id, err)
	}
	if doc == nil {
		return nil, nil
	}

	playlist := &librarydomain.Playlist{ID: id}
	if owner, ok := doc[fieldOwner].(string); ok {
		playlist.Owner = owner
	}
	playlist.Artists = toStringSlice(doc[fieldArtists])
	return playlist, nil
}

func (r *libraryRepository) PlaylistSet(ctx context.Context, userID string, active bool) (map[string]bool, error) {
	field := setField(active)
	entries, err := r.store.GetDocumentField(ctx, usersCollection, userID, field)
	if err != nil {
		return nil, fmt.Errorf("%w: get users/%s.%s: %v", librarydomain.ErrStoreUnavailable, userID, field, err)
	}

	set := make(map[string]bool, len(entries))
	for id := range entries {
		set[id] = true
	}
	return set, nil
}

func (r *libraryRepository) AddToSet(ctx context.Context, userID, playlistID string, active bool) error {
	field := setField(active)
	if err := r.store.SetDocumentField(ctx, usersCollection, userID, field, playlistID, true); err != nil {
		return fmt.Errorf("%w: set users/%s.%s[%s]: %v", librarydomain.ErrStoreUnavailable, userID, field, playlistID, err)
	}
	return nil
}

func (r *libraryRepository) RemoveFromSet(ctx context.Context, userID, playlistID string, active bool) error {
	field := setField(active)
	if err := r.store.DeleteDocumentField(ctx, usersCollection, userID, field, playlistID); err != nil {
		return fmt.Errorf("%w: delete users/%s.%s[%s]: %v", librarydomain.ErrStoreUnavailable, userID, field, playlistID, err)
	}
	return nil
}

func setField(active bool) string {
	if active {
		return fieldActivePlaylists
	}
	return fieldInactivePlaylists
}

// toStringSlice handles both []string and the []interface{} shape the
// Firestore client decodes array fields into.
func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

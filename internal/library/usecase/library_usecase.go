package usecase

import (
	"context"
	"fmt"
	"sync"

	librarydomain "merger-backend/internal/library/domain"
	"merger-backend/internal/library/repository"
)

// libraryUsecase implements LibraryUsecase interface
type libraryUsecase struct {
	repo repository.LibraryRepository

	// Per-user serialization of the multi-write operations. The store
	// offers no cross-document transaction, so writes touching one
	// user's sets are ordered within this process; callers in other
	// processes remain best-effort.
	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// NewLibraryUsecase creates a new instance of libraryUsecase
func NewLibraryUsecase(repo repository.LibraryRepository) LibraryUsecase {
	return &libraryUsecase{
		repo:  repo,
		users: make(map[string]*sync.Mutex),
	}
}

func (u *libraryUsecase) userLock(id string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.users[id]
	if !ok {
		lock = &sync.Mutex{}
		u.users[id] = lock
	}
	return lock
}

func (u *libraryUsecase) RegisterUser(ctx context.Context, id string) (string, error) {
	if err := u.repo.UpsertUser(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

func (u *libraryUsecase) SetCredential(ctx context.Context, id, token string) (string, error) {
	if err := u.repo.SetSpotifyRefresh(ctx, id, token); err != nil {
		return "", err
	}
	return id, nil
}

func (u *libraryUsecase) GetUser(ctx context.Context, id string) (*librarydomain.User, error) {
	user, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", librarydomain.ErrNotFound, id)
	}
	return user, nil
}

func (u *libraryUsecase) CreatePlaylist(ctx context.Context, id, owner string, artists []string) error {
	lock := u.userLock(owner)
	lock.Lock()
	defer lock.Unlock()

	playlist := &librarydomain.Playlist{
		ID:      id,
		Owner:   owner,
		Artists: artists,
	}
	if err := u.repo.CreatePlaylist(ctx, playlist); err != nil {
		return err
	}

	// New playlists start active. If this write fails after the one
	// above committed, the playlist is an orphan until recreated; it is
	// never listed under the wrong user.
	return u.repo.AddToSet(ctx, owner, id, true)
}

func (u *libraryUsecase) ListPlaylists(ctx context.Context, userID string) ([]librarydomain.PlaylistEntry, error) {
	active, err := u.repo.PlaylistSet(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	inactive, err := u.repo.PlaylistSet(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	playlists := make([]librarydomain.PlaylistEntry, 0, len(active)+len(inactive))
	for playlistID := range active {
		artists, err := u.GetPlaylistArtists(ctx, playlistID, userID)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, librarydomain.PlaylistEntry{
			ID:      playlistID,
			Artists: artists,
			Active:  true,
		})
	}
	for playlistID := range inactive {
		// An interrupted toggle can leave an ID in both sets; report it
		// once, as active.
		if active[playlistID] {
			continue
		}
		artists, err := u.GetPlaylistArtists(ctx, playlistID, userID)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, librarydomain.PlaylistEntry{
			ID:      playlistID,
			Artists: artists,
			Active:  false,
		})
	}
	return playlists, nil
}

func (u *libraryUsecase) GetPlaylistArtists(ctx context.Context, playlistID, requesterID string) ([]string, error) {
	playlist, err := u.repo.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist %s", librarydomain.ErrNotFound, playlistID)
	}
	if playlist.Owner != requesterID {
		return nil, librarydomain.ErrUnauthorized
	}
	return playlist.Artists, nil
}

func (u *libraryUsecase) SetPlaylistActiveness(ctx context.Context, userID, playlistID string, active bool) error {
	lock := u.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	inDst, err := u.membership(ctx, userID, playlistID, active)
	if err != nil {
		return err
	}
	inSrc, err := u.membership(ctx, userID, playlistID, !active)
	if err != nil {
		return err
	}

	if !inDst && !inSrc {
		return fmt.Errorf("%w: playlist %s is not associated with user %s", librarydomain.ErrNotFound, playlistID, userID)
	}
	if inDst && !inSrc {
		// Already in the requested state.
		return nil
	}

	// Add to the destination set before removing from the source set: a
	// crash in between leaves the ID doubly listed, which listing
	// resolves (active wins) and the removal repairs on retry. The
	// reverse order could lose the membership entirely.
	if err := u.repo.AddToSet(ctx, userID, playlistID, active); err != nil {
		return err
	}
	return u.repo.RemoveFromSet(ctx, userID, playlistID, !active)
}

func (u *libraryUsecase) membership(ctx context.Context, userID, playlistID string, active bool) (bool, error) {
	set, err := u.repo.PlaylistSet(ctx, userID, active)
	if err != nil {
		return false, err
	}
	return set[playlistID], nil
}

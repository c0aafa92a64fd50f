package delivery

import (
	"context"

	librarydomain "merger-backend/internal/library/domain"
)

// mockLibraryUsecase implements usecase.LibraryUsecase with injectable
// behavior per method.
type mockLibraryUsecase struct {
	RegisterUserFunc          func(ctx context.Context, id string) (string, error)
	SetCredentialFunc         func(ctx context.Context, id, token string) (string, error)
	GetUserFunc               func(ctx context.Context, id string) (*librarydomain.User, error)
	CreatePlaylistFunc        func(ctx context.Context, id, owner string, artists []string) error
	ListPlaylistsFunc         func(ctx context.Context, userID string) ([]librarydomain.PlaylistEntry, error)
	GetPlaylistArtistsFunc    func(ctx context.Context, playlistID, requesterID string) ([]string, error)
	SetPlaylistActivenessFunc func(ctx context.Context, userID, playlistID string, active bool) error
}

func (m *mockLibraryUsecase) RegisterUser(ctx context.Context, id string) (string, error) {
	if m.RegisterUserFunc != nil {
		return m.RegisterUserFunc(ctx, id)
	}
	return id, nil
}

func (m *mockLibraryUsecase) SetCredential(ctx context.Context, id, token string) (string, error) {
	if m.SetCredentialFunc != nil {
		return m.SetCredentialFunc(ctx, id, token)
	}
	return id, nil
}

func (m *mockLibraryUsecase) GetUser(ctx context.Context, id string) (*librarydomain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return &librarydomain.User{ID: id}, nil
}

func (m *mockLibraryUsecase) CreatePlaylist(ctx context.Context, id, owner string, artists []string) error {
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, id, owner, artists)
	}
	return nil
}

func (m *mockLibraryUsecase) ListPlaylists(ctx context.Context, userID string) ([]librarydomain.PlaylistEntry, error) {
	if m.ListPlaylistsFunc != nil {
		return m.ListPlaylistsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockLibraryUsecase) GetPlaylistArtists(ctx context.Context, playlistID, requesterID string) ([]string, error) {
	if m.GetPlaylistArtistsFunc != nil {
		return m.GetPlaylistArtistsFunc(ctx, playlistID, requesterID)
	}
	return nil, nil
}

func (m *mockLibraryUsecase) SetPlaylistActiveness(ctx context.Context, userID, playlistID string, active bool) error {
	if m.SetPlaylistActivenessFunc != nil {
		return m.SetPlaylistActivenessFunc(ctx, userID, playlistID, active)
	}
	return nil
}

package dto

import librarydomain "merger-backend/internal/library/domain"

type RegisterRequest struct {
	ID string `json:"id"`
}

type RegisterResponse struct {
	ID          string `json:"id"`
	AccessToken string `json:"accessToken"`
}

type CredentialRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type CreatePlaylistRequest struct {
	ID      string   `json:"id"`
	Artists []string `json:"artists"`
}

type ActivenessRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type PlaylistsResponse struct {
	Playlists []librarydomain.PlaylistEntry `json:"playlists"`
}

type ArtistsResponse struct {
	Artists []string `json:"artists"`
}

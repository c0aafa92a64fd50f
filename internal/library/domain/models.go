package domain

// User is the stored per-user record. The active/inactive playlist sets
// live on the same document but are never exposed through GetUser; they
// are only reachable through the playlist listing.
type User struct {
	ID             string `json:"id"`
	SpotifyRefresh string `json:"refreshToken"`
}

// Playlist is immutable after creation except for its active/inactive
// membership, which is tracked on the owner's user document, not here.
type Playlist struct {
	ID      string   `json:"id"`
	Owner   string   `json:"user"`
	Artists []string `json:"artists"`
}

// PlaylistEntry is one row of a user's playlist listing.
type PlaylistEntry struct {
	ID      string   `json:"id"`
	Artists []string `json:"artists"`
	Active  bool     `json:"active"`
}

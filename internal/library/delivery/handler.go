package delivery

import (
	"errors"
	"net/http"
	"time"

	librarydomain "merger-backend/internal/library/domain"
	librarydto "merger-backend/internal/library/dto"
	"merger-backend/internal/library/usecase"
	"merger-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type LibraryHandler struct {
	libraryUsecase usecase.LibraryUsecase
	config         *config.Config
}

func NewLibraryHandler(libraryUsecase usecase.LibraryUsecase, cfg *config.Config) *LibraryHandler {
	return &LibraryHandler{
		libraryUsecase: libraryUsecase,
		config:         cfg,
	}
}

// Register creates the user if absent and issues the access token. The
// body is optional: callers without an ID of their own get one minted.
func (h *LibraryHandler) Register(c *gin.Context) {
	var req librarydto.RegisterRequest
	_ = c.ShouldBindJSON(&req)
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	id, err := h.libraryUsecase.RegisterUser(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	token, err := h.issueToken(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, librarydto.RegisterResponse{ID: id, AccessToken: token})
}

func (h *LibraryHandler) SetCredential(c *gin.Context) {
	userID := c.GetString("userID")

	var req librarydto.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	id, err := h.libraryUsecase.SetCredential(c.Request.Context(), userID, req.RefreshToken)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *LibraryHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.libraryUsecase.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *LibraryHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString("userID")

	var req librarydto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	artists := req.Artists
	if artists == nil {
		artists = []string{}
	}

	if err := h.libraryUsecase.CreatePlaylist(c.Request.Context(), req.ID, userID, artists); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

func (h *LibraryHandler) ListPlaylists(c *gin.Context) {
	userID := c.GetString("userID")

	playlists, err := h.libraryUsecase.ListPlaylists(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, librarydto.PlaylistsResponse{Playlists: playlists})
}

func (h *LibraryHandler) GetPlaylistArtists(c *gin.Context) {
	userID := c.GetString("userID")
	playlistID := c.Param("id")

	artists, err := h.libraryUsecase.GetPlaylistArtists(c.Request.Context(), playlistID, userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, librarydto.ArtistsResponse{Artists: artists})
}

func (h *LibraryHandler) SetPlaylistActiveness(c *gin.Context) {
	userID := c.GetString("userID")
	playlistID := c.Param("id")

	var req librarydto.ActivenessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active is required"})
		return
	}

	if err := h.libraryUsecase.SetPlaylistActiveness(c.Request.Context(), userID, playlistID, *req.Active); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": playlistID, "active": *req.Active})
}

func (h *LibraryHandler) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.config.JWTAccessExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// statusFromError maps the domain error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, librarydomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, librarydomain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, librarydomain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

package api

import (
	"net/http"

	"merger-backend/internal/library/delivery"
	libraryUsecase "merger-backend/internal/library/usecase"
	"merger-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, libraryUc libraryUsecase.LibraryUsecase, cfg *config.Config) {
	libraryHandler := delivery.NewLibraryHandler(libraryUc, cfg)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Registration is the entry point: it creates the user and
		// issues the access token the other routes require.
		api.POST("/users", libraryHandler.Register)

		// User routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(cfg.JWTSecret))
		{
			users.GET("/me", libraryHandler.Me)
			users.PUT("/me/credential", libraryHandler.SetCredential)
		}

		// Playlist routes (protected)
		playlists := api.Group("/playlists")
		playlists.Use(delivery.AuthMiddleware(cfg.JWTSecret))
		{
			playlists.POST("", libraryHandler.CreatePlaylist)
			playlists.GET("", libraryHandler.ListPlaylists)
			playlists.GET("/:id/artists", libraryHandler.GetPlaylistArtists)
			playlists.PATCH("/:id/activeness", libraryHandler.SetPlaylistActiveness)
		}
	}
}

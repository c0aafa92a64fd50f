package api

import (
	libraryUsecase "merger-backend/internal/library/usecase"
	"merger-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	libraryUsecase libraryUsecase.LibraryUsecase
	config         *config.Config
}

func NewHandler(libraryUc libraryUsecase.LibraryUsecase, cfg *config.Config) *Handler {
	return &Handler{
		libraryUsecase: libraryUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.libraryUsecase, h.config)

	return r.Run(addr)
}

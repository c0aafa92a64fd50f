package main

import (
	"context"
	"log"

	api "merger-backend/cmd/api"
	"merger-backend/internal/library/repository"
	libraryUsecase "merger-backend/internal/library/usecase"
	"merger-backend/pkg/config"
	"merger-backend/pkg/firestore"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize document store
	ctx := context.Background()
	store, err := firestore.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Firestore:", err)
	}
	defer store.Close()

	// Initialize repository and use case (dependency injection)
	libraryRepo := repository.NewLibraryRepository(store)
	libraryUsecaseInstance := libraryUsecase.NewLibraryUsecase(libraryRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(libraryUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

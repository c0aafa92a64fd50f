package firestore

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"merger-backend/pkg/config"
)

// Store is the Firestore-backed document store. It satisfies the
// repository.DocumentStore interface.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore client from explicit configuration.
// Credentials come from cfg only; nothing here reads the environment.
func NewStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirestoreProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	log.Println("[FIRESTORE] Client initialized successfully")
	return &Store{
		client: client,
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return snap.Data(), nil
}

func (s *Store) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	ref := s.client.Collection(collection).Doc(id)

	// MergeAll rejects an empty field map. An existence-only write is a
	// create that tolerates the document already being there.
	if len(fields) == 0 {
		_, err := ref.Create(ctx, map[string]any{})
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create %s/%s: %w", collection, id, err)
		}
		return nil
	}

	if _, err := ref.Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to merge %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) SetDocumentField(ctx context.Context, collection, id, field, subkey string, value any) error {
	// A merge set with a nested map touches only the one entry and
	// upserts the document and field along the way.
	data := map[string]any{field: map[string]any{subkey: value}}
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to set %s/%s %s.%s: %w", collection, id, field, subkey, err)
	}
	return nil
}

func (s *Store) GetDocumentField(ctx context.Context, collection, id, field string) (map[string]any, error) {
	doc, err := s.GetDocument(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	entries, ok := doc[field].(map[string]any)
	if !ok {
		return nil, nil
	}
	return entries, nil
}

func (s *Store) DeleteDocumentField(ctx context.Context, collection, id, field, subkey string) error {
	data := map[string]any{field: map[string]any{subkey: firestore.Delete}}
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data, firestore.MergeAll)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s %s.%s: %w", collection, id, field, subkey, err)
	}
	return nil
}

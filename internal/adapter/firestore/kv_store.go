package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type entry struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// KVStore keeps one document per key in a single collection.
type KVStore struct {
	collection *firestore.CollectionRef
}

var _ ports.KeyValueStore = (*KVStore)(nil)

// Connect builds a Firestore client through the Firebase admin SDK. An empty
// credentials file falls back to application default credentials.
func Connect(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore client: %w", err)
	}
	return client, nil
}

func NewKVStore(client *firestore.Client, collection string) (*KVStore, error) {
	if strings.TrimSpace(collection) == "" {
		return nil, errors.New("firestore collection is required")
	}
	return &KVStore{collection: client.Collection(collection)}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	snap, err := s.collection.Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	var e entry
	if err := snap.DataTo(&e); err != nil {
		return nil, fmt.Errorf("decode firestore entry %q: %w", key, err)
	}
	return []byte(e.Value), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.collection.Doc(key).Set(ctx, entry{
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	})
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.collection.Doc(key).Delete(ctx)
	return err
}

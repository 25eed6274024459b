package ports

import "context"

// KeyValueStore is the persistence backend behind the repositories.
// Get returns domain.ErrKeyNotFound when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// StorageProbe checks that the backing store accepts reads and writes.
type StorageProbe interface {
	CheckAvailability(ctx context.Context) error
}

// DataTransfer exports and imports the whole persisted state as one
// JSON document.
type DataTransfer interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, document []byte) error
}

type DataService interface {
	ExportData(ctx context.Context) ([]byte, error)
	ImportData(ctx context.Context, document []byte) error
}

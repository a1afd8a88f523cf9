package store

import (
	"context"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CryptoStore persists payloads encrypted at rest. Every entry is encrypted
// with its own salt and nonce; the key is derived from the process-held
// master password.
type CryptoStore interface {
	// Store encrypts payload and returns the new storage key.
	Store(ctx context.Context, payload models.Payload, identifier string) (string, error)
	// StoreTable stores a table together with caller metadata.
	StoreTable(ctx context.Context, table models.Table, identifier string, meta map[string]any) (string, error)
	// StoreJSON stores any JSON-serialisable value.
	StoreJSON(ctx context.Context, v any, identifier string) (string, error)

	// Retrieve decrypts an entry and bumps its access counter.
	Retrieve(ctx context.Context, key string) (models.Payload, models.EncryptionMetadata, error)
	// RetrieveTable decrypts a table entry.
	RetrieveTable(ctx context.Context, key string) (models.Table, map[string]any, error)
	// RetrieveJSON decrypts a JSON entry into target.
	RetrieveJSON(ctx context.Context, key string, target any) error

	// Delete removes an entry. It reports false when the key did not exist.
	Delete(ctx context.Context, key string) (bool, error)
	// VerifyIntegrity reports whether an entry decrypts and matches its digest.
	VerifyIntegrity(ctx context.Context, key string) bool

	// List describes every stored entry without decrypting it.
	List(ctx context.Context) ([]models.StoredDataInfo, error)
	// Status summarises the store.
	Status(ctx context.Context) (models.EncryptionStatus, error)
	// KeysForIdentifier returns the storage keys recorded for identifier,
	// oldest first. It needs the entry catalog and returns nil without it.
	KeysForIdentifier(ctx context.Context, identifier string) ([]string, error)

	// GeneratedPassword returns the master password generated on first
	// start, once. Later calls return "".
	GeneratedPassword() string
}

// EntryCatalog is the plaintext-free index of stored entries.
type EntryCatalog interface {
	Add(ctx context.Context, entry models.CatalogEntry) error
	Remove(ctx context.Context, storageKey string) error
	List(ctx context.Context) ([]models.CatalogEntry, error)
	FindByIdentifierHash(ctx context.Context, identifierHash string) ([]models.CatalogEntry, error)
}

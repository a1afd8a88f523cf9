package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/crypto"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// CryptoStore holds the encrypted entries.
	CryptoStore CryptoStore
	// Catalog indexes the entries. It is a no-op when no DSN is configured.
	Catalog EntryCatalog

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the SQLite catalog at cfg.CatalogDSN and migrates it, when set.
//  2. Opens the encrypted store in cfg.Dir, checking the master password.
func NewStorages(ctx context.Context, cfg config.Storage, keychain crypto.KeyChainService, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{Catalog: NewNopCatalog()}

	if cfg.CatalogDSN != "" {
		db, err := NewConnectSQLite(ctx, cfg.CatalogDSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.db = db
		s.Catalog = NewCatalogRepository(db, log)
	}

	cryptoStore, err := NewCryptoStore(CryptoStoreOptions{
		Dir:            cfg.Dir,
		MasterPassword: cfg.MasterPassword,
		Catalog:        s.Catalog,
	}, keychain, log)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.CryptoStore = cryptoStore

	return s, nil
}

// Close releases the catalog connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-privacy-pipeline/internal/crypto"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// cryptoStore keeps one AES-256-GCM encrypted JSON file per entry in dir.
//
// Every Store call draws a fresh salt and nonce, so storing the same payload
// twice never yields the same ciphertext. Reads and writes of one key are
// serialised by a per-key mutex; distinct keys do not contend.
type cryptoStore struct {
	dir       string
	password  string
	generated string
	genMu     sync.Mutex

	keychain crypto.KeyChainService
	catalog  EntryCatalog
	ids      *utils.UUIDGenerator
	locks    sync.Map

	now    func() time.Time
	logger *logger.Logger
}

// CryptoStoreOptions configures [NewCryptoStore].
type CryptoStoreOptions struct {
	// Dir is the entry directory. It is created with 0700 permissions.
	Dir string
	// MasterPassword is the password entry keys are derived from. Empty
	// generates one on first start.
	MasterPassword string
	// Catalog indexes entries. Nil disables indexing.
	Catalog EntryCatalog
}

// NewCryptoStore opens (or initialises) the encrypted store in opts.Dir.
//
// On first start the master password verifier is written next to the
// entries. On later starts the supplied password must match it, otherwise
// [ErrWrongMasterPassword] or [ErrMasterPasswordRequired] is returned.
func NewCryptoStore(opts CryptoStoreOptions, keychain crypto.KeyChainService, log *logger.Logger) (CryptoStore, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, errors.New("storage dir is empty")
	}
	if err := os.MkdirAll(opts.Dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewCryptoStore").Msg("error creating storage dir")
		return nil, fmt.Errorf("error creating storage dir: %w", err)
	}
	if err := os.Chmod(opts.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("error restricting storage dir permissions: %w", err)
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = NewNopCatalog()
	}

	s := &cryptoStore{
		dir:      opts.Dir,
		password: opts.MasterPassword,
		keychain: keychain,
		catalog:  catalog,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   log,
	}

	if err := s.initMasterPassword(); err != nil {
		return nil, err
	}

	log.Info().Str("func", "NewCryptoStore").Str("dir", opts.Dir).Msg("encrypted store ready")
	return s, nil
}

// initMasterPassword checks the configured password against the persisted
// verifier or creates the verifier on first start.
func (s *cryptoStore) initMasterPassword() error {
	path := filepath.Join(s.dir, verifierFileName)

	encoded, err := os.ReadFile(path)
	switch {
	case err == nil:
		if s.password == "" {
			return ErrMasterPasswordRequired
		}
		ok, verr := s.keychain.VerifyPassword(s.password, strings.TrimSpace(string(encoded)))
		if verr != nil {
			return fmt.Errorf("error reading master password verifier: %w", verr)
		}
		if !ok {
			return ErrWrongMasterPassword
		}
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("error reading master password verifier: %w", err)
	}

	if s.password == "" {
		generated, gerr := s.keychain.GeneratePassword()
		if gerr != nil {
			return fmt.Errorf("error generating master password: %w", gerr)
		}
		s.password = generated
		s.generated = generated
		s.logger.Warn().Str("func", "initMasterPassword").
			Msg("no master password configured, a random one was generated; store it securely, it is shown only once")
	}

	hash, err := s.keychain.HashPassword(s.password)
	if err != nil {
		return fmt.Errorf("error hashing master password: %w", err)
	}

	return writeFileAtomic(path, []byte(hash))
}

// GeneratedPassword returns the password generated on first start and
// forgets it.
func (s *cryptoStore) GeneratedPassword() string {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	p := s.generated
	s.generated = ""
	return p
}

// Store encrypts payload and writes it as a new entry.
func (s *cryptoStore) Store(ctx context.Context, payload models.Payload, identifier string) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validatePayload(payload); err != nil {
		return "", err
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		log.Err(err).Str("func", "*cryptoStore.Store").Msg("error encoding payload")
		return "", fmt.Errorf("error encoding payload: %w", err)
	}

	entry, err := s.encrypt(plaintext)
	if err != nil {
		log.Err(err).Str("func", "*cryptoStore.Store").Msg("error encrypting payload")
		return "", err
	}

	key := newStorageKey(payload.Kind, identifier, s.ids.Generate())

	unlock := s.lock(key)
	size, err := s.writeEntry(key, entry)
	unlock()
	if err != nil {
		log.Err(err).Str("func", "*cryptoStore.Store").Str("storage_key", key).Msg("error writing entry")
		return "", err
	}

	catalogEntry := models.CatalogEntry{
		StorageKey:     key,
		Kind:           payload.Kind,
		IdentifierHash: hashIdentifier(identifier),
		SizeBytes:      size,
		CreatedAt:      entry.Metadata.EncryptedAt,
	}
	if err = s.catalog.Add(ctx, catalogEntry); err != nil {
		log.Warn().Err(err).Str("func", "*cryptoStore.Store").Str("storage_key", key).Msg("entry stored but not catalogued")
	}

	log.Debug().Str("func", "*cryptoStore.Store").Str("storage_key", key).Int64("size_bytes", size).Msg("entry stored")
	return key, nil
}

// StoreTable stores table with meta kept inside the ciphertext.
func (s *cryptoStore) StoreTable(ctx context.Context, table models.Table, identifier string, meta map[string]any) (string, error) {
	return s.Store(ctx, models.Payload{Kind: models.PayloadTable, Table: &table, Metadata: meta}, identifier)
}

// StoreJSON stores the JSON encoding of v.
func (s *cryptoStore) StoreJSON(ctx context.Context, v any, identifier string) (string, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedPayload, err)
	}
	return s.Store(ctx, models.Payload{Kind: models.PayloadJSON, Document: doc}, identifier)
}

// Retrieve decrypts the entry of key, bumps its access counter and persists
// the counter back to the entry file.
func (s *cryptoStore) Retrieve(ctx context.Context, key string) (models.Payload, models.EncryptionMetadata, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.Payload{}, models.EncryptionMetadata{}, err
	}
	if err := validateStorageKey(key); err != nil {
		return models.Payload{}, models.EncryptionMetadata{}, err
	}

	unlock := s.lock(key)
	defer unlock()

	entry, err := s.readEntry(key)
	if err != nil {
		return models.Payload{}, models.EncryptionMetadata{}, err
	}

	payload, err := s.decrypt(entry)
	if err != nil {
		log.Err(err).Str("func", "*cryptoStore.Retrieve").Str("storage_key", key).Msg("error decrypting entry")
		return models.Payload{}, models.EncryptionMetadata{}, err
	}

	accessed := s.now().UTC()
	entry.Metadata.AccessCount++
	entry.Metadata.LastAccessed = &accessed
	if _, err = s.writeEntry(key, entry); err != nil {
		log.Err(err).Str("func", "*cryptoStore.Retrieve").Str("storage_key", key).Msg("error persisting access counter")
		return models.Payload{}, models.EncryptionMetadata{}, err
	}

	return payload, entry.Metadata, nil
}

// RetrieveTable decrypts a table entry.
func (s *cryptoStore) RetrieveTable(ctx context.Context, key string) (models.Table, map[string]any, error) {
	payload, _, err := s.Retrieve(ctx, key)
	if err != nil {
		return models.Table{}, nil, err
	}
	if payload.Kind != models.PayloadTable || payload.Table == nil {
		return models.Table{}, nil, fmt.Errorf("%w: entry %s is not a table", ErrUnsupportedPayload, key)
	}
	return *payload.Table, payload.Metadata, nil
}

// RetrieveJSON decrypts a JSON entry into target.
func (s *cryptoStore) RetrieveJSON(ctx context.Context, key string, target any) error {
	payload, _, err := s.Retrieve(ctx, key)
	if err != nil {
		return err
	}
	if payload.Kind != models.PayloadJSON {
		return fmt.Errorf("%w: entry %s is not a json document", ErrUnsupportedPayload, key)
	}
	if err = json.Unmarshal(payload.Document, target); err != nil {
		return fmt.Errorf("error decoding json document: %w", err)
	}
	return nil
}

// Delete removes the entry file of key. It returns false without error when
// the entry does not exist.
func (s *cryptoStore) Delete(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validateStorageKey(key); err != nil {
		return false, err
	}

	unlock := s.lock(key)
	err := os.Remove(s.entryPath(key))
	unlock()

	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		log.Err(err).Str("func", "*cryptoStore.Delete").Str("storage_key", key).Msg("error deleting entry")
		return false, fmt.Errorf("error deleting entry: %w", err)
	}

	s.locks.Delete(key)

	if err = s.catalog.Remove(ctx, key); err != nil {
		log.Warn().Err(err).Str("func", "*cryptoStore.Delete").Str("storage_key", key).Msg("entry deleted but catalog row kept")
	}

	log.Debug().Str("func", "*cryptoStore.Delete").Str("storage_key", key).Msg("entry deleted")
	return true, nil
}

// VerifyIntegrity reports whether key decrypts and matches its digest. It
// does not count as an access.
func (s *cryptoStore) VerifyIntegrity(ctx context.Context, key string) bool {
	if validateStorageKey(key) != nil {
		return false
	}

	unlock := s.lock(key)
	defer unlock()

	entry, err := s.readEntry(key)
	if err != nil {
		return false
	}
	if _, err = s.decrypt(entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cryptoStore.VerifyIntegrity").Str("storage_key", key).Msg("integrity check failed")
		return false
	}
	return true
}

// List describes every entry in the directory, oldest first. Unreadable
// files are skipped.
func (s *cryptoStore) List(ctx context.Context) ([]models.StoredDataInfo, error) {
	log := logger.FromContext(ctx)

	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Err(err).Str("func", "*cryptoStore.List").Msg("error reading storage dir")
		return nil, fmt.Errorf("error reading storage dir: %w", err)
	}

	infos := make([]models.StoredDataInfo, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, entryExtension) {
			continue
		}
		key := strings.TrimSuffix(name, entryExtension)
		if validateStorageKey(key) != nil {
			continue
		}

		fi, err := de.Info()
		if err != nil {
			continue
		}
		entry, err := s.readEntry(key)
		if err != nil {
			log.Warn().Err(err).Str("func", "*cryptoStore.List").Str("storage_key", key).Msg("skipping unreadable entry")
			continue
		}

		infos = append(infos, models.StoredDataInfo{
			StorageKey:   key,
			Kind:         kindOfKey(key),
			EncryptedAt:  entry.Metadata.EncryptedAt,
			AccessCount:  entry.Metadata.AccessCount,
			LastAccessed: entry.Metadata.LastAccessed,
			SizeBytes:    fi.Size(),
			Encryption:   entry.Metadata.EncryptionAlgorithm,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].EncryptedAt.Equal(infos[j].EncryptedAt) {
			return infos[i].StorageKey < infos[j].StorageKey
		}
		return infos[i].EncryptedAt.Before(infos[j].EncryptedAt)
	})

	return infos, nil
}

// Status summarises the store.
func (s *cryptoStore) Status(ctx context.Context) (models.EncryptionStatus, error) {
	infos, err := s.List(ctx)
	if err != nil {
		return models.EncryptionStatus{}, err
	}

	var total int64
	for _, info := range infos {
		total += info.SizeBytes
	}

	_, verr := os.Stat(filepath.Join(s.dir, verifierFileName))

	return models.EncryptionStatus{
		EncryptionEnabled:   true,
		StorageDir:          s.dir,
		StoredFiles:         len(infos),
		TotalSizeBytes:      total,
		EncryptionAlgorithm: models.EncryptionAES256GCM,
		KeyDerivation:       models.KeyDerivationPBKDF2SHA256,
		Iterations:          s.keychain.Iterations(),
		MasterKeyConfigured: verr == nil,
	}, nil
}

// KeysForIdentifier returns the catalogued keys of identifier whose entry
// file still exists, oldest first.
func (s *cryptoStore) KeysForIdentifier(ctx context.Context, identifier string) ([]string, error) {
	entries, err := s.catalog.FindByIdentifierHash(ctx, hashIdentifier(identifier))
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, err := os.Stat(s.entryPath(e.StorageKey)); err == nil {
			keys = append(keys, e.StorageKey)
		}
	}
	return keys, nil
}

func (s *cryptoStore) lock(key string) func() {
	mu, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func validatePayload(p models.Payload) error {
	switch p.Kind {
	case models.PayloadTable:
		if p.Table == nil {
			return fmt.Errorf("%w: table payload without table", ErrUnsupportedPayload)
		}
	case models.PayloadJSON:
		if len(p.Document) == 0 || !json.Valid(p.Document) {
			return fmt.Errorf("%w: json payload without valid document", ErrUnsupportedPayload)
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrUnsupportedPayload, p.Kind)
	}
	return nil
}

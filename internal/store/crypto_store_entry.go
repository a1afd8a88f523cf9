package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// encrypt seals plaintext under a key derived from a fresh salt.
func (s *cryptoStore) encrypt(plaintext []byte) (models.StorageEntry, error) {
	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return models.StorageEntry{}, fmt.Errorf("error generating salt: %w", err)
	}
	nonce, err := s.keychain.GenerateNonce()
	if err != nil {
		return models.StorageEntry{}, fmt.Errorf("error generating nonce: %w", err)
	}

	key := s.keychain.DeriveKey(s.password, salt)
	sealed, err := s.keychain.Seal(key, nonce, plaintext)
	if err != nil {
		return models.StorageEntry{}, fmt.Errorf("error sealing payload: %w", err)
	}

	return models.StorageEntry{
		EncryptedData: base64.StdEncoding.EncodeToString(sealed),
		Nonce:         base64.StdEncoding.EncodeToString(nonce),
		Salt:          base64.StdEncoding.EncodeToString(salt),
		Metadata: models.EncryptionMetadata{
			EncryptedAt:         s.now().UTC(),
			KeyDerivation:       models.KeyDerivationPBKDF2SHA256,
			EncryptionAlgorithm: models.EncryptionAES256GCM,
			DataHash:            s.keychain.Digest(plaintext),
		},
	}, nil
}

// decrypt opens entry and checks the plaintext digest.
func (s *cryptoStore) decrypt(entry models.StorageEntry) (models.Payload, error) {
	sealed, err := base64.StdEncoding.DecodeString(entry.EncryptedData)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: encrypted_data: %w", ErrCorruptedEntry, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(entry.Nonce)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: nonce: %w", ErrCorruptedEntry, err)
	}
	salt, err := base64.StdEncoding.DecodeString(entry.Salt)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: salt: %w", ErrCorruptedEntry, err)
	}

	key := s.keychain.DeriveKey(s.password, salt)
	plaintext, err := s.keychain.Open(key, nonce, sealed)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	if s.keychain.Digest(plaintext) != entry.Metadata.DataHash {
		return models.Payload{}, ErrIntegrity
	}

	var payload models.Payload
	if err = json.Unmarshal(plaintext, &payload); err != nil {
		return models.Payload{}, fmt.Errorf("%w: payload: %w", ErrCorruptedEntry, err)
	}
	return payload, nil
}

func (s *cryptoStore) readEntry(key string) (models.StorageEntry, error) {
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return models.StorageEntry{}, fmt.Errorf("%w: %s", ErrStorageNotFound, key)
		}
		return models.StorageEntry{}, fmt.Errorf("error reading entry: %w", err)
	}

	var entry models.StorageEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		return models.StorageEntry{}, fmt.Errorf("%w: %w", ErrCorruptedEntry, err)
	}
	return entry, nil
}

// writeEntry persists entry and returns the file size.
func (s *cryptoStore) writeEntry(key string, entry models.StorageEntry) (int64, error) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("error encoding entry: %w", err)
	}
	if err = writeFileAtomic(s.entryPath(key), data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("error setting file permissions: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing file: %w", err)
	}
	return nil
}

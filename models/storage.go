package models

import "time"

// Algorithm identifiers written into every entry.
const (
	KeyDerivationPBKDF2SHA256 = "PBKDF2-SHA256"
	EncryptionAES256GCM       = "AES-256-GCM"
)

// PayloadKind distinguishes tabular entries from arbitrary JSON documents.
type PayloadKind string

const (
	PayloadTable PayloadKind = "df"
	PayloadJSON  PayloadKind = "json"
)

// StorageEntry is one encrypted-at-rest record, serialised as the entry file.
//
// EncryptedData holds base64(ciphertext || tag). Nonce (12 bytes) and Salt
// (16 bytes) are base64 encoded and never reused between entries.
type StorageEntry struct {
	EncryptedData string             `json:"encrypted_data"`
	Nonce         string             `json:"nonce"`
	Salt          string             `json:"salt"`
	Metadata      EncryptionMetadata `json:"metadata"`
}

// EncryptionMetadata is the cleartext metadata block of an entry. It never
// contains plaintext payload data.
type EncryptionMetadata struct {
	EncryptedAt         time.Time  `json:"encrypted_at"`
	KeyDerivation       string     `json:"key_derivation"`
	EncryptionAlgorithm string     `json:"encryption_algorithm"`
	DataHash            string     `json:"data_hash"`
	AccessCount         int        `json:"access_count"`
	LastAccessed        *time.Time `json:"last_accessed"`
}

// Payload is the decrypted content of an entry. Exactly one of Table and
// Document is set, according to Kind. Metadata carries the caller supplied
// metadata stored alongside the payload inside the ciphertext.
type Payload struct {
	Kind     PayloadKind    `json:"kind"`
	Table    *Table         `json:"table,omitempty"`
	Document []byte         `json:"document,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// StoredDataInfo describes an entry without decrypting it.
type StoredDataInfo struct {
	StorageKey   string      `json:"storage_key"`
	Kind         PayloadKind `json:"kind"`
	EncryptedAt  time.Time   `json:"encrypted_at"`
	AccessCount  int         `json:"access_count"`
	LastAccessed *time.Time  `json:"last_accessed"`
	SizeBytes    int64       `json:"file_size"`
	Encryption   string      `json:"encryption_algorithm"`
}

// EncryptionStatus summarises the state of the store.
type EncryptionStatus struct {
	EncryptionEnabled   bool   `json:"encryption_enabled"`
	StorageDir          string `json:"storage_directory"`
	StoredFiles         int    `json:"stored_files"`
	TotalSizeBytes      int64  `json:"total_size_bytes"`
	EncryptionAlgorithm string `json:"encryption_algorithm"`
	KeyDerivation       string `json:"key_derivation"`
	Iterations          int    `json:"iterations"`
	MasterKeyConfigured bool   `json:"master_key_configured"`
}

// CatalogEntry is the plaintext-free index row kept for every entry.
// IdentifierHash is the hex SHA-256 of the logical dataset identifier.
type CatalogEntry struct {
	StorageKey     string      `db:"storage_key"`
	Kind           PayloadKind `db:"kind"`
	IdentifierHash string      `db:"identifier_hash"`
	SizeBytes      int64       `db:"size_bytes"`
	CreatedAt      time.Time   `db:"created_at"`
}

package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const (
	entryExtension       = ".enc"
	verifierFileName     = ".master_key_hash"
	maxKeyIdentifierSize = 32
	defaultKeyIdentifier = "data"
)

var storageKeyPattern = regexp.MustCompile(
	`^(df|json)_[a-z0-9-]{1,32}_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
)

// newStorageKey builds `<kind>_<sanitized identifier>_<uuid>`.
func newStorageKey(kind models.PayloadKind, identifier, id string) string {
	return fmt.Sprintf("%s_%s_%s", kind, sanitizeIdentifier(identifier), id)
}

// sanitizeIdentifier lower-cases identifier and keeps [a-z0-9], folding every
// other run of characters into a single dash.
func sanitizeIdentifier(identifier string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(identifier) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	s := b.String()
	if len(s) > maxKeyIdentifierSize {
		s = s[:maxKeyIdentifierSize]
	}
	s = strings.Trim(s, "-")
	if s == "" {
		return defaultKeyIdentifier
	}
	return s
}

func validateStorageKey(key string) error {
	if !storageKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidStorageKey, key)
	}
	return nil
}

func kindOfKey(key string) models.PayloadKind {
	kind, _, _ := strings.Cut(key, "_")
	return models.PayloadKind(kind)
}

func (s *cryptoStore) entryPath(key string) string {
	return filepath.Join(s.dir, key+entryExtension)
}

// hashIdentifier is what the catalog stores instead of the identifier.
func hashIdentifier(identifier string) string {
	sum := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(sum[:])
}

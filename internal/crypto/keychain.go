// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count accepted.
	MinIterations = 100_000

	saltSize  = 16
	nonceSize = 12
	keySize   = 32
	tagSize   = 16
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int

	// Argon2id tuning parameters for the master password verifier.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] that derives entry keys
// with PBKDF2-HMAC-SHA256 using iterations rounds (raised to
// [MinIterations] when lower) and hashes the master password with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService(iterations int) KeyChainService {
	if iterations < MinIterations {
		iterations = MinIterations
	}

	return &keyChainService{
		iterations:   iterations,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return randomBytes(saltSize)
}

// GenerateNonce implements [KeyChainService].
func (k *keyChainService) GenerateNonce() ([]byte, error) {
	return randomBytes(nonceSize)
}

// GeneratePassword implements [KeyChainService].
func (k *keyChainService) GeneratePassword() (string, error) {
	b, err := randomBytes(32)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, k.iterations, keySize, sha256.New)
}

// Iterations implements [KeyChainService].
func (k *keyChainService) Iterations() int {
	return k.iterations
}

// Seal implements [KeyChainService]. The nonce is not prepended; the caller
// stores it next to the ciphertext.
func (k *keyChainService) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(key, nonce, sealed []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(sealed) < tagSize {
		return nil, ErrCiphertextTooShort
	}

	// An error here means a wrong password (and so a wrong key) or a
	// modified ciphertext, nonce or tag.
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return plaintext, nil
}

// HashPassword implements [KeyChainService].
func (k *keyChainService) HashPassword(password string) (string, error) {
	salt, err := randomBytes(saltSize)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		k.argonMemory,
		k.argonTime,
		k.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword implements [KeyChainService]. The parameters embedded in
// the encoded verifier are used, not the receiver's, so verifiers survive a
// change of tuning.
func (k *keyChainService) VerifyPassword(password, encoded string) (bool, error) {
	// 1. Split "$argon2id$v=19$m=65536,t=1,p=4$salt$hash"
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidEncodedHash
	}

	// 2. Check version
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEncodedHash, err)
	}
	if version != argon2.Version {
		return false, ErrIncompatibleVersion
	}

	// 3. Read cost parameters
	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEncodedHash, err)
	}

	// 4. Decode salt and expected hash
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEncodedHash, err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEncodedHash, err)
	}

	// 5. Recompute and compare in constant time
	actual := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

// Digest implements [KeyChainService].
func (k *keyChainService) Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKeySize
	}
	if len(nonce) != nonceSize {
		return nil, ErrInvalidNonceSize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

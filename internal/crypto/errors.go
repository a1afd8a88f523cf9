package crypto

import "errors"

var (
	// ErrAuthentication is returned by Open when the GCM tag does not verify.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrCiphertextTooShort is returned when a sealed blob cannot even hold
	// the authentication tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidKeySize is returned when a key is not 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not 12 bytes long.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidEncodedHash is returned when a password verifier is not in
	// the $argon2id$v=..$m=..,t=..,p=..$salt$hash format.
	ErrInvalidEncodedHash = errors.New("invalid encoded password hash")

	// ErrIncompatibleVersion is returned for verifiers produced by another
	// Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

package crypto

// KeyChainService owns every cryptographic primitive used by the encrypted
// store. It knows nothing about files, datasets or the pipeline; its only
// job is to generate randomness, derive keys and seal or open payloads.
//
// Entry encryption flow:
//
//	Salt, Nonce = GenerateSalt() + GenerateNonce()   (step 1)
//	Key         = DeriveKey(password, Salt)          (step 2)
//	Sealed      = Seal(Key, Nonce, plaintext)        (step 3)
//	DataHash    = Digest(plaintext)                  (step 4)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. A fresh salt is used for every
	// stored entry so that one password yields a different key per entry.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns 12 random bytes, the AES-GCM nonce size.
	GenerateNonce() ([]byte, error)

	// GeneratePassword returns a random master password (32 bytes of
	// entropy, URL-safe base64) for deployments that did not configure one.
	GeneratePassword() (string, error)

	// DeriveKey derives a 256-bit key from password and salt with
	// PBKDF2-HMAC-SHA256. It is deterministic for equal inputs.
	DeriveKey(password string, salt []byte) []byte

	// Iterations returns the PBKDF2 iteration count in use.
	Iterations() int

	// Seal encrypts plaintext with AES-256-GCM and returns ciphertext with
	// the 16-byte authentication tag appended.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open authenticates and decrypts sealed. It returns [ErrAuthentication]
	// (wrapped) when the tag does not verify, which happens on a wrong key
	// or a tampered ciphertext.
	Open(key, nonce, sealed []byte) ([]byte, error)

	// HashPassword returns an Argon2id encoded verifier for password. Only
	// the verifier is ever persisted; the password cannot be recovered.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches an encoded verifier
	// produced by HashPassword.
	VerifyPassword(password, encoded string) (bool, error)

	// Digest returns the hex SHA-256 of data.
	Digest(data []byte) string
}

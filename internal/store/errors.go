package store

import "errors"

// Sentinel errors returned by the encrypted store. Callers should use
// [errors.Is] to match against these values. Cryptographic failures are
// always distinct from [ErrStorageNotFound].
var (
	// ErrStorageNotFound is returned when no entry exists for a storage key.
	ErrStorageNotFound = errors.New("storage key not found")

	// ErrInvalidStorageKey is returned when a storage key does not have the
	// `<kind>_<identifier>_<uuid>` shape. Such keys are never turned into
	// file paths.
	ErrInvalidStorageKey = errors.New("invalid storage key")

	// ErrDecryption is returned when an entry cannot be authenticated: the
	// master password is wrong or the ciphertext was tampered with.
	ErrDecryption = errors.New("failed to decrypt entry")

	// ErrIntegrity is returned when a decrypted payload does not match the
	// digest recorded at encryption time.
	ErrIntegrity = errors.New("entry integrity check failed")

	// ErrCorruptedEntry is returned when an entry file cannot be decoded.
	ErrCorruptedEntry = errors.New("entry file is corrupted")

	// ErrWrongMasterPassword is returned at start-up when the configured
	// master password does not match the persisted verifier.
	ErrWrongMasterPassword = errors.New("wrong master password")

	// ErrMasterPasswordRequired is returned at start-up when a verifier
	// exists but no master password was supplied.
	ErrMasterPasswordRequired = errors.New("master password required")

	// ErrUnsupportedPayload is returned when a payload kind does not match
	// its content.
	ErrUnsupportedPayload = errors.New("unsupported payload")
)

// Low-level database operation errors of the entry catalog.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning catalog rows fails.
	ErrScanningRows = errors.New("failed to scan catalog rows")
)

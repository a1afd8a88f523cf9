package service

import "errors"

var (
	// ErrSessionNotFound is returned by Merge when an identifier has neither
	// a session nor a catalogued entry.
	ErrSessionNotFound = errors.New("no processed dataset for identifier")

	// ErrEmptyTable is returned when an upload carries no rows or no columns.
	ErrEmptyTable = errors.New("table is empty")

	// ErrUnsafeForExternalUse is returned when a pseudonymized copy fails
	// its self-check and is withheld.
	ErrUnsafeForExternalUse = errors.New("pseudonymized data failed verification")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidDataProvided     = errors.New("invalid data provided")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnmaskScopeRequired is returned when a request asks for original
	// values with a token that lacks the unmask scope.
	ErrUnmaskScopeRequired = errors.New("token lacks the `unmask` scope")
)

// Request errors.
var (
	ErrInvalidJSON          = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam    = errors.New("invalid query parameter")
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)

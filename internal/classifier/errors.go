package classifier

import "errors"

var (
	// ErrInvalidRule is returned when a rule has an unknown field type, an
	// out-of-range weight or a pattern that does not compile.
	ErrInvalidRule = errors.New("invalid classifier rule")

	// ErrInvalidThreshold is returned when a threshold is outside [0,1].
	ErrInvalidThreshold = errors.New("threshold must be within [0,1]")

	// ErrUnsupportedFormat is returned for rule files that are neither YAML
	// nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported rules format")
)

package common

import "errors"

var (
	// ErrorInvalidInput covers malformed inputs: empty sample arrays,
	// column names that don't follow the base[index] format, missing labels.
	ErrorInvalidInput = errors.New("invalid input")

	// ErrorConfigMismatch is returned when the percentile and color lists
	// can't be paired up.
	ErrorConfigMismatch = errors.New("configuration mismatch")
)

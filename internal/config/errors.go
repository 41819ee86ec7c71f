package config

import "errors"

var (
	// ErrInvalidConfig indicates a config value outside its valid range.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownPreset indicates a preset name with no item set.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

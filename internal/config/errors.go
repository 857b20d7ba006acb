package config

import "errors"

// Errors returned by Store operations.
var (
	// ErrSettingNotFound indicates the requested path has no value set.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidPath indicates the input given to New or Merge is not
	// valid JSON.
	ErrInvalidPath = errors.New("invalid setting path")
)

package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrMarkerEmpty        = errors.New("marker cannot be empty")
	ErrExtensionsEmpty    = errors.New("extensions cannot be empty")
	ErrEmptyEntry         = errors.New("extensions and exclude entries cannot be empty")
	ErrNegativeConcurrent = errors.New("concurrency cannot be negative")
)

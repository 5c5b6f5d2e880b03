package config

import (
	"context"
	"errors"
)

// ErrInvalidConfig is wrapped by loaders when a file is readable but its
// content is not acceptable.
var ErrInvalidConfig = errors.New("invalid configuration")

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from path and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}

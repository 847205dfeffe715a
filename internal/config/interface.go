package config

import "context"

// Loader abstracts the configuration front end. Implementations parse one or
// more files or directories and return the unified pipeline model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Pipeline, error)
}

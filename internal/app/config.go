package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PipelinePath string // hcl file or directory

	RendererName string
	Frames       int
	LogFormat    string
	LogLevel     string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}
	if cfg.Frames < 0 {
		return nil, errors.New("Frames cannot be negative")
	}

	return &cfg, nil
}

// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
	// DotEnvPath names a dotenv file whose variables are added to the
	// environment before LETTERPRESS_* overrides are read. A missing file is
	// not an error. Variables already set in the environment win.
	DotEnvPath string
}

// Loaded is a configuration together with the file it came from.
type Loaded struct {
	Config *Config
	// Path is the config file that was read, or "" when only defaults and
	// environment overrides applied.
	Path string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (Loaded, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (Loaded, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return Loaded{}, err
	}

	return Loaded{Config: cfg, Path: path}, nil
}

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers ordered from lowest to highest
// priority.
type configBuilder struct {
	configs []*StructuredConfig
	environ map[string]string
	flags   *StructuredConfig
	envFile string
	rest    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if err := mergo.Merge(config, defaults()); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	return config, config.validate()
}

// withFlags parses args. The flag layer is registered last so that it wins
// over every other source.
func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags.config
	b.envFile = flags.envFile
	b.rest = flags.rest
	return b
}

// withDotEnv reads the .env file named by -env-file, or ./.env when it
// exists, as a base for the process environment.
func (b *configBuilder) withDotEnv() *configBuilder {
	environ, err := readEnvironment(b.envFile)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.environ = environ
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	if b.flags != nil {
		b.configs = append(b.configs, b.flags)
	}
	return b
}

// withJSON prepends the JSON file layer: it only fills what env and flags
// leave unset.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append([]*StructuredConfig{jsonCfg}, b.configs...)
	return b
}

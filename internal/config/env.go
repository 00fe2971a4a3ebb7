// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv populates cfg from environ using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types. A nil environ means the process
// environment.
func parseEnv(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// readEnvironment returns the process environment laid over the variables
// of a .env file. An explicitly named file must exist; the default one is
// optional.
func readEnvironment(envFile string) (map[string]string, error) {
	path := envFile
	if path == "" {
		path = defaultEnvFile
	}

	environ, err := godotenv.Read(path)
	if err != nil {
		if envFile == "" && errors.Is(err, fs.ErrNotExist) {
			environ = map[string]string{}
		} else {
			return nil, fmt.Errorf("error reading env file %s: %w", path, err)
		}
	}

	maps.Copy(environ, processEnvironment())
	return environ, nil
}

func processEnvironment() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}
	return environ
}

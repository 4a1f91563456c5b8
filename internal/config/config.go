// Copyright Pigeonworks LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads go-logfold settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pigeonworks-llc/go-logfold/pkg/fold"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".logfold.yaml"

// Config holds the file-level settings.
type Config struct {
	// Provider is the CI marker dialect: "gitlab" or "travis".
	Provider string `yaml:"provider"`
	// Fold is the tri-state enable switch: "never", "auto" or "always".
	Fold string `yaml:"fold"`
	// Prefix overrides the process discriminator in section identifiers.
	Prefix string `yaml:"prefix"`
}

// Default returns the built-in settings: GitLab markers, auto mode.
func Default() *Config {
	return &Config{
		Provider: fold.GitLab.Name,
		Fold:     string(fold.ModeAuto),
	}
}

// Load reads the config file at path if it exists, then applies LOGFOLD_*
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.loadFromEnv()
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("LOGFOLD_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("LOGFOLD_FOLD"); v != "" {
		c.Fold = v
	}
	if v := os.Getenv("LOGFOLD_PREFIX"); v != "" {
		c.Prefix = v
	}
}

// Folder builds a fold.Folder from the settings. Unknown fold modes fall
// back to auto; unknown providers are an error.
func (c *Config) Folder() (*fold.Folder, error) {
	p, ok := fold.ProviderByName(c.Provider)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", c.Provider)
	}
	return fold.New(&fold.Config{
		Provider: p,
		Mode:     fold.Mode(c.Fold),
		Prefix:   c.Prefix,
	}), nil
}

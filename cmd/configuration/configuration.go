// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package configuration loads the optional ksforge configuration file.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFileName = "config"
	// KsforgeHomeDir is the ksforge directory under the user home directory.
	KsforgeHomeDir = ".ksforge"
	// ConfigEnvVar overrides the configuration file location when set.
	ConfigEnvVar = "KSFORGECONFIG"
)

// Loader loads the ksforge configuration.
type Loader interface {
	Load() (*Config, error)
}

// DefaultLoader resolves the configuration file from the ConfigEnvVar
// environment variable or the user home directory. A missing file yields an
// empty configuration rather than an error.
type DefaultLoader struct{}

// Load implements Loader.
func (d *DefaultLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(ConfigEnvVar); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", ConfigEnvVar)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}

	configFilePath := filepath.Join(userHomeDir, KsforgeHomeDir, defaultConfigFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return load(configFilePath)
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is a directory, instead of a file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, err
	}
	return config, nil
}

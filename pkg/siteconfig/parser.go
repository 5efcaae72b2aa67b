// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"gopkg.in/yaml.v3"
)

// Parse loads a site configuration from its yaml serialization.
func Parse(b []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Serialize marshals a site configuration to yaml.
func Serialize(config *Config) (string, error) {
	b, err := yaml.Marshal(config)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

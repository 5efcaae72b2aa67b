// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var knownExtensions = map[string]struct{}{
	ExtensionPNGMath:         {},
	ExtensionGoogleAnalytics: {},
}

// Validate performs validation of a site configuration according to the
// rules the documentation build expects before consuming it.
func Validate(config *Config) error {
	var errs *multierror.Error
	if config == nil {
		return fmt.Errorf("configuration must not be nil")
	}
	if len(config.Project) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("project is a mandatory property"))
	}
	if len(config.Version) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("version is a mandatory property"))
	}
	if len(config.Extensions) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("at least one extension must be enabled"))
	}
	seen := map[string]struct{}{}
	for _, extension := range config.Extensions {
		if _, known := knownExtensions[extension]; !known {
			errs = multierror.Append(errs, fmt.Errorf("unknown extension: %s", extension))
			continue
		}
		if _, duplicate := seen[extension]; duplicate {
			errs = multierror.Append(errs, fmt.Errorf("extension enabled more than once: %s", extension))
		}
		seen[extension] = struct{}{}
	}
	if _, enabled := seen[ExtensionGoogleAnalytics]; enabled && len(config.GoogleAnalyticsID) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("googleAnalyticsID is mandatory with the %s extension", ExtensionGoogleAnalytics))
	}
	if config.HTML != nil {
		errs = validateHTML(config.HTML, errs)
	}
	return errs.ErrorOrNil()
}

func validateHTML(html *HTML, errs *multierror.Error) *multierror.Error {
	for pattern, sidebars := range html.Sidebars {
		if len(pattern) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("sidebar pattern must not be empty"))
		}
		if len(sidebars) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("sidebar template list for pattern %q must not be empty", pattern))
		}
		for _, sidebar := range sidebars {
			if len(sidebar) == 0 {
				errs = multierror.Append(errs, fmt.Errorf("sidebar template name for pattern %q must not be empty", pattern))
			}
		}
	}
	return errs
}

// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

// Default returns the canonical configuration of the Kolmogorov-Smirnov
// documentation site.
func Default() *Config {
	return &Config{
		Project:   "Kolmogorov-Smirnov",
		Copyright: "2015, Daithi O Crualaoich",
		Author:    "Daithi O Crualaoich",
		Version:   "1.0.1",
		Release:   "1.0.1",
		Extensions: []string{
			ExtensionPNGMath,
			ExtensionGoogleAnalytics,
		},
		TemplatesPath:     []string{"_templates"},
		ExcludePatterns:   []string{"_build"},
		SourceSuffix:      ".rst",
		MasterDoc:         "index",
		Language:          "",
		PygmentsStyle:     "sphinx",
		GoogleAnalyticsID: "UA-71626319-1",
		HTML: &HTML{
			Theme:      "alabaster",
			Title:      "Kolmogorov-Smirnov",
			StaticPath: []string{"_static"},
			Sidebars: map[string][]string{
				"**": {"localtoc.html"},
			},
			UseIndex:       false,
			ShowSourcelink: false,
			ShowGenerator:  false,
			ShowCopyright:  false,
		},
	}
}

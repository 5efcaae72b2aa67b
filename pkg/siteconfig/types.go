// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package siteconfig models the configuration of the project documentation
// site. The configuration is a declarative artifact consumed by the external
// documentation build: it is parsed, validated, defaulted and emitted here,
// never executed.
package siteconfig

// Known extension identifiers activated in the documentation build pipeline.
const (
	// ExtensionPNGMath renders math expressions to PNG images.
	ExtensionPNGMath = "pngmath"
	// ExtensionGoogleAnalytics injects the analytics snippet, keyed by
	// Config.GoogleAnalyticsID.
	ExtensionGoogleAnalytics = "googleanalytics"
)

// Config models the documentation-site configuration for the project.
// Values are set once at load time and never mutated by the build.
type Config struct {
	// Project is the display name of the documented project.
	//
	// Mandatory
	Project string `yaml:"project"`
	// Copyright is the copyright holder notice shown in output.
	//
	// Optional
	Copyright string `yaml:"copyright,omitempty"`
	// Author is the project author shown in output metadata.
	//
	// Optional
	Author string `yaml:"author,omitempty"`
	// Version is the short project version string shown in output.
	//
	// Mandatory
	Version string `yaml:"version"`
	// Release is the full version string shown in output. Defaults to
	// Version when left empty.
	//
	// Optional
	Release string `yaml:"release,omitempty"`
	// Extensions is the ordered list of capability plugins activated in the
	// documentation build pipeline. Order is significant because extensions
	// are initialized in sequence.
	Extensions []string `yaml:"extensions,omitempty"`
	// TemplatesPath lists directories searched for page templates, relative
	// to the documentation root.
	//
	// Optional
	TemplatesPath []string `yaml:"templatesPath,omitempty"`
	// ExcludePatterns lists path patterns excluded when looking for source
	// files.
	//
	// Optional
	ExcludePatterns []string `yaml:"excludePatterns,omitempty"`
	// SourceSuffix is the filename suffix of documentation source files.
	//
	// Optional
	SourceSuffix string `yaml:"sourceSuffix,omitempty"`
	// MasterDoc is the document name of the documentation root, without its
	// source suffix.
	//
	// Optional
	MasterDoc string `yaml:"masterDoc,omitempty"`
	// Language is the natural-language locale for generated text. An empty
	// value leaves the builder default in effect.
	//
	// Optional
	Language string `yaml:"language,omitempty"`
	// PygmentsStyle is the syntax-highlighting style name for code blocks.
	//
	// Optional
	PygmentsStyle string `yaml:"pygmentsStyle,omitempty"`
	// GoogleAnalyticsID is the tracking identifier consumed by the
	// googleanalytics extension.
	//
	// Optional, mandatory when the googleanalytics extension is enabled
	GoogleAnalyticsID string `yaml:"googleAnalyticsID,omitempty"`
	// HTML configures the HTML output presentation.
	//
	// Optional
	HTML *HTML `yaml:"html,omitempty"`
}

// HTML is the set of options for the HTML output presentation.
type HTML struct {
	// Theme is the named visual template controlling page layout and
	// styling.
	Theme string `yaml:"theme,omitempty"`
	// Title is the page title of the generated site. Defaults to the
	// project name when left empty.
	Title string `yaml:"title,omitempty"`
	// StaticPath lists directories with static assets copied into the
	// output, relative to the documentation root.
	StaticPath []string `yaml:"staticPath,omitempty"`
	// Sidebars maps page-path patterns to the ordered list of sidebar
	// widget templates rendered on matching pages.
	Sidebars map[string][]string `yaml:"sidebars,omitempty"`
	// UseIndex controls whether the general index page is generated and
	// linked.
	UseIndex bool `yaml:"useIndex"`
	// ShowSourcelink controls whether links to the page sources are shown.
	ShowSourcelink bool `yaml:"showSourcelink"`
	// ShowGenerator controls whether the generator attribution is shown in
	// the page footer.
	ShowGenerator bool `yaml:"showGenerator"`
	// ShowCopyright controls whether the copyright notice is shown in the
	// page footer.
	ShowCopyright bool `yaml:"showCopyright"`
}

// Complete applies defaulting rules for derived fields: Release falls back to
// Version and the HTML title falls back to the project name.
func (c *Config) Complete() {
	if c.Release == "" {
		c.Release = c.Version
	}
	if c.HTML != nil && c.HTML.Title == "" {
		c.HTML.Title = c.Project
	}
}

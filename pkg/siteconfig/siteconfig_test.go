// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig_test

import (
	"github.com/daithiocrualaoich/ksforge/pkg/siteconfig"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("siteconfig", func() {
	Describe("the default configuration", func() {
		var config *siteconfig.Config

		BeforeEach(func() {
			config = siteconfig.Default()
		})

		It("declares the project identity", func() {
			Expect(config.Project).To(Equal("Kolmogorov-Smirnov"))
			Expect(config.Author).To(Equal("Daithi O Crualaoich"))
			Expect(config.Copyright).To(Equal("2015, Daithi O Crualaoich"))
			Expect(config.Version).To(Equal("1.0.1"))
			Expect(config.Release).To(Equal("1.0.1"))
		})

		It("enables exactly two extensions in order", func() {
			Expect(config.Extensions).To(Equal([]string{
				siteconfig.ExtensionPNGMath,
				siteconfig.ExtensionGoogleAnalytics,
			}))
		})

		It("declares the build behavior", func() {
			Expect(config.TemplatesPath).To(Equal([]string{"_templates"}))
			Expect(config.ExcludePatterns).To(Equal([]string{"_build"}))
			Expect(config.SourceSuffix).To(Equal(".rst"))
			Expect(config.MasterDoc).To(Equal("index"))
			Expect(config.Language).To(BeEmpty())
			Expect(config.PygmentsStyle).To(Equal("sphinx"))
			Expect(config.GoogleAnalyticsID).To(Equal("UA-71626319-1"))
		})

		It("declares the HTML output presentation", func() {
			Expect(config.HTML).NotTo(BeNil())
			Expect(config.HTML.Theme).To(Equal("alabaster"))
			Expect(config.HTML.Title).To(Equal(config.Project))
			Expect(config.HTML.StaticPath).To(Equal([]string{"_static"}))
			Expect(config.HTML.Sidebars).To(Equal(map[string][]string{
				"**": {"localtoc.html"},
			}))
		})

		It("disables all visibility toggles", func() {
			Expect(config.HTML.UseIndex).To(BeFalse())
			Expect(config.HTML.ShowSourcelink).To(BeFalse())
			Expect(config.HTML.ShowGenerator).To(BeFalse())
			Expect(config.HTML.ShowCopyright).To(BeFalse())
		})

		It("is valid", func() {
			Expect(siteconfig.Validate(config)).To(Succeed())
		})
	})

	Describe("serialization", func() {
		It("round trips the default configuration losslessly", func() {
			config := siteconfig.Default()

			serialized, err := siteconfig.Serialize(config)
			Expect(err).NotTo(HaveOccurred())

			parsed, err := siteconfig.Parse([]byte(serialized))
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(config))
		})

		It("keeps the visibility toggle keys for false values", func() {
			serialized, err := siteconfig.Serialize(siteconfig.Default())
			Expect(err).NotTo(HaveOccurred())
			Expect(serialized).To(ContainSubstring("useIndex: false"))
			Expect(serialized).To(ContainSubstring("showSourcelink: false"))
			Expect(serialized).To(ContainSubstring("showGenerator: false"))
			Expect(serialized).To(ContainSubstring("showCopyright: false"))
		})

		It("fails on malformed yaml", func() {
			_, err := siteconfig.Parse([]byte("project: [unclosed"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("completion", func() {
		It("defaults release to version", func() {
			config := &siteconfig.Config{Project: "p", Version: "2.0.0"}
			config.Complete()
			Expect(config.Release).To(Equal("2.0.0"))
		})

		It("defaults the HTML title to the project name", func() {
			config := &siteconfig.Config{
				Project: "p",
				Version: "2.0.0",
				HTML:    &siteconfig.HTML{Theme: "alabaster"},
			}
			config.Complete()
			Expect(config.HTML.Title).To(Equal("p"))
		})

		It("keeps explicit values", func() {
			config := &siteconfig.Config{
				Project: "p",
				Version: "2.0.0",
				Release: "2.0.1",
				HTML:    &siteconfig.HTML{Title: "custom"},
			}
			config.Complete()
			Expect(config.Release).To(Equal("2.0.1"))
			Expect(config.HTML.Title).To(Equal("custom"))
		})
	})

	Describe("validation", func() {
		It("rejects a nil configuration", func() {
			Expect(siteconfig.Validate(nil)).To(HaveOccurred())
		})

		It("requires project and version", func() {
			err := siteconfig.Validate(&siteconfig.Config{
				Extensions: []string{siteconfig.ExtensionPNGMath},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("project is a mandatory property"))
			Expect(err.Error()).To(ContainSubstring("version is a mandatory property"))
		})

		It("requires at least one extension", func() {
			err := siteconfig.Validate(&siteconfig.Config{Project: "p", Version: "1"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("at least one extension"))
		})

		It("rejects unknown and duplicate extensions", func() {
			err := siteconfig.Validate(&siteconfig.Config{
				Project: "p", Version: "1",
				Extensions: []string{"no-such-extension", siteconfig.ExtensionPNGMath, siteconfig.ExtensionPNGMath},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown extension: no-such-extension"))
			Expect(err.Error()).To(ContainSubstring("enabled more than once"))
		})

		It("requires an analytics id with the googleanalytics extension", func() {
			err := siteconfig.Validate(&siteconfig.Config{
				Project: "p", Version: "1",
				Extensions: []string{siteconfig.ExtensionGoogleAnalytics},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("googleAnalyticsID is mandatory"))
		})

		It("rejects empty sidebar mappings", func() {
			err := siteconfig.Validate(&siteconfig.Config{
				Project: "p", Version: "1",
				Extensions: []string{siteconfig.ExtensionPNGMath},
				HTML: &siteconfig.HTML{
					Sidebars: map[string][]string{"**": {}},
				},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("sidebar template list"))
		})
	})
})

// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package version_test

import (
	"testing"

	. "github.com/daithiocrualaoich/ksforge/pkg/version"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestVersion(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Version Suite")
}

var _ = Describe("version", func() {
	It("should not return a specific version number", func() {
		Expect(Version).To(Equal("binary was not built properly"))
	})
})

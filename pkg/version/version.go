// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version is a global variable which is set during compile time via -ldflags
// in the `go build` process. It stores the version of ksforge in the
// <major>.<minor>.<patch> form.
var Version = "binary was not built properly"

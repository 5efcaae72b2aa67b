// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package writers writes produced artifacts to their destinations.
package writers

// Writer writes a blob with a name to a path.
type Writer interface {
	Write(name, path string, blob []byte) error
}

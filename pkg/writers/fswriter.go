// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSWriter is an implementation of the Writer interface for writing blobs to
// the file system.
type FSWriter struct {
	Root string
	Ext  string
}

// Write stores the blob under Root/path/name, creating intermediate
// directories as needed. Empty blobs are skipped.
func (f *FSWriter) Write(name, path string, blob []byte) error {
	if len(blob) == 0 {
		return nil
	}

	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}

	if len(f.Ext) > 0 {
		name = fmt.Sprintf("%s.%s", name, f.Ext)
	}

	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, blob, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}

	return nil
}

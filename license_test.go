package eegmst_test

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const licenseLine = "// SPDX-License-Identifier: MIT"

// TestLicenseHeaders checks that every non-test source file outside doc.go and
// the command's main.go opens with the SPDX line.
func TestLicenseHeaders(t *testing.T) {
	var checked int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") ||
			name == "doc.go" || name == "main.go" {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		first := ""
		if sc.Scan() {
			first = sc.Text()
		}
		assert.Equal(t, licenseLine, first, path)
		checked++

		return sc.Err()
	})
	require.NoError(t, err)
	assert.NotZero(t, checked)
}

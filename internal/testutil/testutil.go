// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustUnsetenv unsets the environment variable key for the rest of the test.
// The previous value is restored during cleanup. Like t.Setenv, it cannot be
// used in parallel tests.
func MustUnsetenv(t *testing.T, key string) {
	t.Helper()

	// t.Setenv registers the restore and panics for parallel tests.
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
}

// ClearPrefixedEnv unsets every environment variable whose name starts with
// prefix + "_", so host overrides such as LETTERPRESS_DICTIONARY cannot leak
// into a test. It returns the names that were cleared.
func ClearPrefixedEnv(t *testing.T, prefix string) []string {
	t.Helper()

	var cleared []string
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, prefix+"_") {
			MustUnsetenv(t, key)
			cleared = append(cleared, key)
		}
	}
	return cleared
}

// MustMkdirAll creates a directory along with any necessary parents.
// The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, path string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustWriteFile writes content to path, creating parent directories first.
// It returns path so fixtures can be declared inline.
func MustWriteFile(t testing.TB, path, content string) string {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

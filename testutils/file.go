package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

// WriteJSON marshals v into dir/name and returns the path written.
func WriteJSON(tb testing.TB, dir, name string, v interface{}) string {
	tb.Helper()
	data, err := json.Marshal(v)
	test.That(tb, err, test.ShouldBeNil)
	path := filepath.Join(dir, name)
	test.That(tb, os.WriteFile(path, data, 0o600), test.ShouldBeNil)
	return path
}

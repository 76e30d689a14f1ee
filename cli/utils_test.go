package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

type closeFailingWriter struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (w *closeFailingWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestWriteJSON(t *testing.T) {
	var stdout bytes.Buffer
	test.That(t, writeJSON(&stdout, "-", map[string]int{"frames": 3}), test.ShouldBeNil)
	test.That(t, stdout.String(), test.ShouldEqual, "{\n  \"frames\": 3\n}\n")

	path := filepath.Join(t.TempDir(), "out.json")
	stdout.Reset()
	test.That(t, writeJSON(&stdout, path, []int{1, 2}), test.ShouldBeNil)
	test.That(t, stdout.Len(), test.ShouldEqual, 0)
	//nolint:gosec
	written, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(written), test.ShouldEqual, "[\n  1,\n  2\n]\n")

	err = writeJSON(&stdout, filepath.Join(t.TempDir(), "missing", "out.json"), 1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot create output")
}

func TestWriteJSONCloseError(t *testing.T) {
	orig := createOutput
	defer func() { createOutput = orig }()

	out := &closeFailingWriter{closeErr: errors.New("disk quota exceeded")}
	createOutput = func(string) (io.WriteCloser, error) {
		return out, nil
	}
	err := writeJSON(io.Discard, "out.json", map[string]int{"frames": 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "disk quota exceeded")
	test.That(t, out.closed, test.ShouldBeTrue)
	test.That(t, out.String(), test.ShouldContainSubstring, "\"frames\": 3")

	// a clean close keeps the write result
	out = &closeFailingWriter{}
	test.That(t, writeJSON(io.Discard, "out.json", 1), test.ShouldBeNil)
	test.That(t, out.closed, test.ShouldBeTrue)
}

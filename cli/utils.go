package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// printf prints a message with a newline.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a message prefixed with "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, "Warning: "+format+"\n", a...)
}

// createOutput opens an output file for writing; tests replace it.
var createOutput = func(path string) (io.WriteCloser, error) {
	//nolint:gosec
	return os.Create(path)
}

// writeJSON writes v as indented JSON to path, or to w when path is empty or "-". A failure to
// close the file is returned when the write itself succeeded.
func writeJSON(w io.Writer, path string, v interface{}) (err error) {
	if path != "" && path != "-" {
		f, createErr := createOutput(path)
		if createErr != nil {
			return errors.Wrapf(createErr, "cannot create output %q", path)
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

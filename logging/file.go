package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRotatingFile returns a writer appending to path that rotates the file once it reaches
// maxSizeMB megabytes, keeping two compressed backups. The directory is created as needed.
func NewRotatingFile(path string, maxSizeMB int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 2,
		Compress:   true,
	}
}

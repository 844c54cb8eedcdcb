package logging

import (
	"bytes"
	"io"
)

// PrefixWriter prepends a fixed prefix to every line written through it.
// Partial lines are held back until their newline arrives so a prefix is
// never inserted mid-line.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending []byte
}

// NewPrefixWriter wraps w so each complete line gets prefix prepended.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), writer: w}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)

	for {
		nl := bytes.IndexByte(pw.pending, '\n')
		if nl < 0 {
			break
		}
		if _, err := pw.writer.Write(pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.writer.Write(pw.pending[:nl+1]); err != nil {
			return 0, err
		}
		pw.pending = pw.pending[nl+1:]
	}

	return len(p), nil
}

package export

import (
	"fmt"
	"io"
	"strings"

	"StylusBoard/internal/state"
)

// Format is a file format an export can be written in.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts a format name in any case, with or without a
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPNG, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Ext returns the file extension for f, with the dot.
func (f Format) Ext() string { return "." + string(f) }

// Write renders paths in format f to w. Like Image it reports false, and
// writes nothing, when there is no ink.
func Write(w io.Writer, f Format, paths state.PathList, opts Options) (bool, error) {
	switch f {
	case FormatPDF:
		return PDF(w, paths, opts)
	case FormatPNG:
		data, ok, err := PNG(paths, opts)
		if !ok || err != nil {
			return ok, err
		}
		if _, err := w.Write(data); err != nil {
			return false, fmt.Errorf("write png: %w", err)
		}
		return true, nil
	}
	return false, fmt.Errorf("unknown export format %q", string(f))
}

// Package output provides output formatting for quote results.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"siteflow-quote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is human-readable text
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formats lists the supported formats
var Formats = []Format{FormatCLI, FormatJSON}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Input(fmt.Sprintf("unsupported output format %q (use cli or json)", s)).
		WithContext("format", s)
}

// JSON writes v as indented JSON. Amounts are decimal strings, so no
// precision is lost.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

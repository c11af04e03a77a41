package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatFuzzyDL produces fuzzyDL (.fdl) output, one clause per line.
	FormatFuzzyDL Format = "fuzzydl"

	// FormatJSON produces a JSON document listing the clauses in order.
	FormatJSON Format = "json"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatFuzzyDL: {
		Name:        FormatFuzzyDL,
		MIMEType:    "text/x-fuzzydl",
		Extension:   ".fdl",
		Description: "fuzzyDL - fuzzy description logic knowledge base",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON - clause list with run metadata",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format by name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for name, info := range FormatRegistry {
		if s == string(name) || s == info.Extension || "."+s == info.Extension {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (supported: %s)", s, strings.Join(FormatNames(), ", "))
}

// FormatNames returns the registered format names in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// NewWriter returns a clause writer for the given format.
func NewWriter(format Format, w io.Writer) (ClauseWriter, error) {
	switch format {
	case FormatFuzzyDL, "":
		return NewLineWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

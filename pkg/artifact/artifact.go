// Package artifact handles serialization of CFG artifacts to and from disk.
// It supports msgpack (compact, the default) and JSON (human-readable)
// encodings and validates artifacts on decode.
package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/l3aro/go-cfg-bench/pkg/cfg"
)

// Format selects the on-disk encoding of an artifact.
type Format string

const (
	FormatMsgpack Format = "msgpack"
	FormatJSON    Format = "json"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "msgpack", "":
		return FormatMsgpack, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (use msgpack or json)", s)
	}
}

// formatForPath infers the encoding from the file extension. Anything that
// is not .json is treated as msgpack.
func formatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatMsgpack
}

// Encode writes the artifact to w in the given format.
func Encode(w io.Writer, c *cfg.CFG, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("encoding msgpack: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// Decode reads an artifact from r and validates it before returning.
func Decode(r io.Reader, format Format) (*cfg.CFG, error) {
	var c cfg.CFG
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("decoding msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid artifact: %w", err)
	}
	return &c, nil
}

// WriteFile encodes the artifact to path. An empty format is inferred from
// the extension (.json is JSON, everything else msgpack).
func WriteFile(path string, c *cfg.CFG, format Format) error {
	if format == "" {
		format = formatForPath(path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := Encode(f, c, format); err != nil {
		return err
	}
	return f.Close()
}

// ReadFile decodes and validates the artifact at path, inferring the format
// from the extension.
func ReadFile(path string) (*cfg.CFG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, formatForPath(path))
}

package knowledge

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a knowledge document.
type Format string

const (
	// FormatJSON is strict JSON, the default.
	FormatJSON Format = "json"
	// FormatYAML accepts YAML documents.
	FormatYAML Format = "yaml"
	// FormatHJSON accepts human-friendly JSON with comments and unquoted keys.
	FormatHJSON Format = "hjson"
)

// ParseFormat resolves a configured format name, falling back to the
// extension of name when format is blank.
func ParseFormat(format, name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
		return formatFromName(name), nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hjson":
		return FormatHJSON, nil
	default:
		return "", fmt.Errorf("unsupported knowledge format %q", format)
	}
}

func formatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hjson":
		return FormatHJSON
	default:
		return FormatJSON
	}
}

// Decode parses raw bytes into a Document without validating its contents.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatHJSON:
		err = hjson.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Document{}, fmt.Errorf("decode %s document: %w", format, err)
	}
	return doc, nil
}

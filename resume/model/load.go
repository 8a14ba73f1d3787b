package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an on-disk encoding for ResumeData.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned when a file extension or format name is not
// JSON or YAML.
var ErrUnsupportedFormat = errors.New("unsupported resume format")

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load decodes a ResumeData record from r. JSON input rejects unknown fields.
func Load(r io.Reader, format Format) (ResumeData, error) {
	var data ResumeData
	raw, err := io.ReadAll(r)
	if err != nil {
		return data, fmt.Errorf("read resume: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return data, nil
	}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return ResumeData{}, fmt.Errorf("decode json resume: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return ResumeData{}, fmt.Errorf("decode yaml resume: %w", err)
		}
	default:
		return data, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return data, nil
}

// LoadFile reads a ResumeData record from a .json, .yaml or .yml file.
func LoadFile(path string) (ResumeData, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return ResumeData{}, err
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return ResumeData{}, err
	}
	defer f.Close()
	return Load(f, format)
}

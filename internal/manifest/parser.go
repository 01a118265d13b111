package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/contentx/internal/resource"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// sourceText names manifests parsed from a string.
const sourceText = "<text>"

// Parse decodes manifest text. YAML and JSON are both accepted.
func Parse(text string) (Descriptor, error) {
	var d Descriptor
	if err := ParseInto(text, &d); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// ParseInto decodes manifest text over an existing descriptor. Fields present
// in text replace the ones in d; absent fields are left as they were.
func ParseInto(text string, d *Descriptor) error {
	if d == nil {
		return &ParseError{Source: sourceText, Err: fmt.Errorf("nil descriptor")}
	}
	if err := yaml.Unmarshal([]byte(text), d); err != nil {
		return &ParseError{Source: sourceText, Err: err}
	}
	return nil
}

// Serialize encodes d in format.
func Serialize(d Descriptor, format resource.Format) (string, error) {
	if format == resource.FormatTOML {
		return "", fmt.Errorf("manifests cannot be written as %s", format)
	}
	codec, err := resource.CodecFor(format)
	if err != nil {
		return "", err
	}
	if d.Data == nil {
		d.Data = []Entry{}
	}
	return codec.Marshal(d)
}

// ReadFile reads, validates and decodes the manifest at file.
func ReadFile(fsys afero.Fs, file string) (Descriptor, error) {
	data, err := afero.ReadFile(fsys, file)
	if err != nil {
		return Descriptor{}, &ParseError{Source: file, Err: err}
	}

	result, err := Validate(data)
	if err != nil {
		return Descriptor{}, &ParseError{Source: file, Err: err}
	}
	if !result.Valid {
		return Descriptor{}, &ParseError{Source: file, Err: errSchema, Issues: result.Issues}
	}

	codec, err := resource.CodecFor(resource.FormatOfExt(filepath.Ext(file)))
	if err != nil {
		return Descriptor{}, &ParseError{Source: file, Err: err}
	}
	var d Descriptor
	if err := codec.Unmarshal(string(data), &d); err != nil {
		return Descriptor{}, &ParseError{Source: file, Err: err}
	}
	return d, nil
}

// WriteFile serializes d in the format implied by file's extension and writes
// it, creating parent directories as needed.
func WriteFile(fsys afero.Fs, file string, d Descriptor) error {
	text, err := Serialize(d, resource.FormatOfExt(filepath.Ext(file)))
	if err != nil {
		return fmt.Errorf("serializing manifest %s: %w", d.ID, err)
	}
	if err := fsys.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", file, err)
	}
	if err := afero.WriteFile(fsys, file, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", file, err)
	}
	return nil
}

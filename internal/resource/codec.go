package resource

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Format names a serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Codec converts between serialized text and Go values.
type Codec interface {
	Unmarshal(text string, v any) error
	Marshal(v any) (string, error)
}

type yamlCodec struct{}

func (yamlCodec) Unmarshal(text string, v any) error {
	return yaml.Unmarshal([]byte(text), v)
}

func (yamlCodec) Marshal(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type jsonCodec struct{}

func (jsonCodec) Unmarshal(text string, v any) error {
	return json.Unmarshal([]byte(text), v)
}

func (jsonCodec) Marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

type tomlCodec struct{}

func (tomlCodec) Unmarshal(text string, v any) error {
	return toml.Unmarshal([]byte(text), v)
}

func (tomlCodec) Marshal(v any) (string, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var codecs = map[Format]Codec{
	FormatYAML: yamlCodec{},
	FormatJSON: jsonCodec{},
	FormatTOML: tomlCodec{},
}

// CodecFor returns the codec registered for f.
func CodecFor(f Format) (Codec, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", f)
	}
	return c, nil
}

// ParseFormat converts a user supplied name ("yml", "JSON") into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q: must be yaml, json or toml", s)
	}
}

// Extensions lists the file extensions probed for a resource, in priority order.
var Extensions = []string{".yaml", ".yml", ".json", ".toml"}

// FormatOfExt maps a file extension to its Format. Unknown extensions fall
// back to YAML, which also accepts JSON documents.
func FormatOfExt(ext string) Format {
	f, err := ParseFormat(ext)
	if err != nil {
		return FormatYAML
	}
	return f
}

// Package config loads the optional per-project configuration file.
//
// The file is YAML. Its structure is described by a JSON Schema derived from
// [File], which every loaded file is validated against before decoding.
// Command line flags take precedence over values from the file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// FileName is the configuration file looked up in the scanned root.
const FileName = ".mdgen.yaml"

// ErrInvalid is returned for configuration files that do not match the
// schema.
var ErrInvalid = errors.New("invalid configuration")

// File is the content of a configuration file.
type File struct {
	NameMD        string   `json:"namemd,omitempty" yaml:"namemd,omitempty" jsonschema:"name of the generated Markdown file"`
	Skip          []string `json:"skip,omitempty" yaml:"skip,omitempty" jsonschema:"paths to skip relative to the scanned root; prefix with :REGEXP: for a regular expression"`
	SkipOverwrite bool     `json:"skip-overwrite,omitempty" yaml:"skip-overwrite,omitempty" jsonschema:"skip entries replace the built-in list instead of extending it"`
	Tag           string   `json:"tag,omitempty" yaml:"tag,omitempty" jsonschema:"annotation tag marking documentation inside doc comments"`
}

var resolved = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}
	return s.Resolve(nil)
})

// Schema returns the JSON Schema of [File].
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	s.Title = "mdgen configuration"
	return s, nil
}

// SchemaJSON returns the indented JSON encoding of [Schema].
func SchemaJSON() ([]byte, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}

// Load reads the configuration file at path. found is false when the file
// does not exist.
func Load(path string) (f File, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, false, nil
	}
	if err != nil {
		return File{}, false, err
	}
	f, err = Parse(data)
	if err != nil {
		return File{}, true, fmt.Errorf("%s: %w", path, err)
	}
	return f, true, nil
}

// Parse validates and decodes YAML configuration data.
func Parse(data []byte) (File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return File{}, nil
	}

	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return File{}, nil
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if instance == nil {
		return File{}, nil
	}

	rs, err := resolved()
	if err != nil {
		return File{}, err
	}
	if err := rs.Validate(instance); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return f, nil
}

// Package metadata reads project information from composer.json.
package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileName is the metadata file looked up in the scanned root.
const FileName = "composer.json"

// ErrMalformed is returned for metadata files that are not valid JSON or
// whose fields have the wrong type.
var ErrMalformed = errors.New("malformed " + FileName)

// Project holds the fields of the metadata file used in the generated
// document. Missing fields stay empty.
type Project struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Licenses    Licenses          `json:"license"`
	Authors     []json.RawMessage `json:"authors"`
}

// Licenses accepts a single license string or a list of them.
type Licenses []string

// UnmarshalJSON implements [json.Unmarshaler].
func (l *Licenses) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*l = nil
		} else {
			*l = Licenses{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("license must be a string or a list of strings: %w", err)
	}
	*l = many
	return nil
}

// Load reads the metadata file at path. A missing file yields an empty
// Project.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Project{}, nil
	}
	if err != nil {
		return Project{}, err
	}
	return Parse(data)
}

// Parse decodes metadata from data.
func Parse(data []byte) (Project, error) {
	var p Project
	if len(bytes.TrimSpace(data)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return p, nil
}

// AuthorBlocks returns every author record pretty-printed with four space
// indentation. Keys keep their order from the file.
func (p Project) AuthorBlocks() ([]string, error) {
	blocks := make([]string, 0, len(p.Authors))
	for _, raw := range p.Authors {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "    "); err != nil {
			return nil, fmt.Errorf("format author: %w", err)
		}
		blocks = append(blocks, buf.String())
	}
	return blocks, nil
}

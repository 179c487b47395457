// Package boxes loads named bounding-box definitions from JSON or YAML.
package boxes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/avgeo/icaobox/internal/geo"

	"gopkg.in/yaml.v3"
)

// definition is the root document shape, shared by both formats.
type definition struct {
	Boxes []geo.Box `json:"boxes" yaml:"boxes"`
}

// Load reads a boxes definition file. The format is chosen by file
// extension: .yaml/.yml parses as YAML, anything else as JSON. Both
// share the same schema: a top-level "boxes" array.
func Load(path string) ([]geo.Box, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", geo.ErrInputNotFound, path)
		}
		return nil, err
	}

	var def definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	default:
		err = json.Unmarshal(data, &def)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", geo.ErrMalformedInput, path, err)
	}

	if def.Boxes == nil {
		return nil, fmt.Errorf("%w: %s: missing top-level \"boxes\" list", geo.ErrMalformedInput, path)
	}

	seen := make(map[string]bool, len(def.Boxes))
	for i := range def.Boxes {
		def.Boxes[i].Name = strings.TrimSpace(def.Boxes[i].Name)

		if err := def.Boxes[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: box %d: %w", path, i, err)
		}
		if seen[def.Boxes[i].Name] {
			return nil, fmt.Errorf("%w: %s: duplicate box name %q", geo.ErrMalformedInput, path, def.Boxes[i].Name)
		}
		seen[def.Boxes[i].Name] = true
	}

	return def.Boxes, nil
}

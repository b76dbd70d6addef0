package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wagescope/ladder/internal/model"
)

// roleFile is the on-disk taxonomy layout. The persistence layer exports
// this file out-of-band; the engine only ever does a whole-file batch read.
type roleFile struct {
	Version string                `yaml:"version"`
	Roles   []model.CanonicalRole `yaml:"roles"`
}

// LoadFile reads a taxonomy snapshot export in YAML format. A missing or
// unreadable file is fatal to the caller — matching is meaningless without
// a taxonomy.
func LoadFile(path string) ([]model.CanonicalRole, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	var f roleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("taxonomy: parse %s: %w", path, err)
	}
	if len(f.Roles) == 0 {
		return nil, fmt.Errorf("taxonomy: %s contains no roles", path)
	}
	return f.Roles, nil
}

// Package levels provides level-pack loading for the platformer.
// This package depends on game but game does not depend on levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovikan/tui-platformer/internal/game"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Grid []string `yaml:"grid"`
}

// ParseYAML parses a YAML level file into a validated level.
// The grid rows use the same tile legend as game.ParseLevel.
func ParseYAML(data []byte) (*game.Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return nil, fmt.Errorf("level has no id")
	}

	level, err := game.ParseLevel(yl.ID, yl.Name, yl.Grid)
	if err != nil {
		return nil, err
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

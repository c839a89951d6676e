package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
)

// LoadLayout returns the default column profile overlaid with the YAML file
// at path. Keys absent from the file keep their defaults; an empty path
// returns the defaults untouched.
func LoadLayout(path string) (model.Layout, error) {
	l := model.DefaultLayout()
	if path == "" {
		return l, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("layout: %w", err)
	}
	if err := yaml.Unmarshal(b, &l); err != nil {
		return l, fmt.Errorf("layout %s: %w", path, err)
	}
	if l.Threshold <= 0 || l.Threshold >= 1 {
		return l, fmt.Errorf("layout %s: threshold %v out of (0,1)", path, l.Threshold)
	}
	return l, nil
}

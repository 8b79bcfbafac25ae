package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileCatalog is the on-disk layout of a catalog resource:
//
//	substitutes:
//	  butter: [margarine, oil]
//	categories:
//	  - name: cheese
//	    members: [cheddar, mozzarella]
type fileCatalog struct {
	Substitutes map[string][]string `koanf:"substitutes"`
	Categories  []Category          `koanf:"categories"`
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	// Substitute keys may contain spaces but never dots, so the default
	// delimiter is fine.
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	var fc fileCatalog
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}

	if len(fc.Substitutes) == 0 && len(fc.Categories) == 0 {
		return nil, fmt.Errorf("catalog %s has no substitutes or categories", path)
	}

	for i, cat := range fc.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("catalog %s: category %d has no name", path, i)
		}
	}

	return New(fc.Substitutes, fc.Categories), nil
}

// LoadOrDefault loads the catalog at path, or returns the built-in one when path is empty
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

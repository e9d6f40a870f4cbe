// Package catalog holds the sample questions demonstrated by the queries
// command.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PreviewLength is the number of characters of an answer shown in listings.
const PreviewLength = 200

var ErrUnknownCategory = errors.New("unknown query category")

//go:embed queries.yaml
var defaultCatalog []byte

type Category struct {
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`
	Icon      string   `yaml:"icon"`
	Default   bool     `yaml:"default"`
	Questions []string `yaml:"questions"`
}

type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Load returns the embedded catalog.
func Load() (Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode query catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Categories))
	for i, category := range c.Categories {
		if category.Name == "" {
			return Catalog{}, fmt.Errorf("query catalog category %d has no name", i)
		}
		if _, dup := seen[category.Name]; dup {
			return Catalog{}, fmt.Errorf("query catalog category %q declared twice", category.Name)
		}
		seen[category.Name] = struct{}{}
		if len(category.Questions) == 0 {
			return Catalog{}, fmt.Errorf("query catalog category %q has no questions", category.Name)
		}
	}

	return c, nil
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, category := range c.Categories {
		names = append(names, category.Name)
	}

	return names
}

// Select returns the named categories in the requested order. With no names it
// returns the default categories; "all" selects everything.
func (c Catalog) Select(names ...string) ([]Category, error) {
	if len(names) == 0 {
		var defaults []Category
		for _, category := range c.Categories {
			if category.Default {
				defaults = append(defaults, category)
			}
		}
		return defaults, nil
	}

	var selected []Category
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			return c.Categories, nil
		}

		category, ok := c.find(name)
		if !ok {
			return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownCategory, name, strings.Join(c.Names(), ", "))
		}
		selected = append(selected, category)
	}

	return selected, nil
}

func (c Catalog) find(name string) (Category, bool) {
	for _, category := range c.Categories {
		if category.Name == name {
			return category, true
		}
	}

	return Category{}, false
}

// Preview shortens an answer to PreviewLength characters, marking the cut.
func Preview(answer string) string {
	runes := []rune(answer)
	if len(runes) <= PreviewLength {
		return answer
	}

	return string(runes[:PreviewLength]) + "..."
}

package service

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"travelmap-api/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var categoriesYAML []byte

// fallbackIcon prefixes labels of categories missing from the table.
const fallbackIcon = "📍"

// CategoryGroup is one tag namespace of the curated "general" search.
type CategoryGroup struct {
	Key    string   `yaml:"key"`
	Values []string `yaml:"values"`
}

// Catalog holds the fixed category data: the curated search set,
// the display priority of tag namespaces and the label translations.
type Catalog struct {
	Priority []string          `yaml:"priority"`
	Fallback string            `yaml:"fallback"`
	Curated  []CategoryGroup   `yaml:"curated"`
	Labels   map[string]string `yaml:"labels"`
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("service: failed to parse category catalog: %w", err)
	}
	if len(c.Priority) == 0 {
		return nil, errors.New("service: category catalog has no priority list")
	}
	if c.Fallback == "" {
		return nil, errors.New("service: category catalog has no fallback category")
	}
	for _, group := range c.Curated {
		if group.Key == "" || len(group.Values) == 0 {
			return nil, fmt.Errorf("service: curated group %q is empty", group.Key)
		}
	}
	if c.Labels == nil {
		c.Labels = map[string]string{}
	}
	return &c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(categoriesYAML)
	if err != nil {
		panic(err)
	}
	return c
})

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// RawCategory returns the first non-empty tag among the priority namespaces,
// or the fallback category.
func (c *Catalog) RawCategory(tags models.Tags) string {
	for _, key := range c.Priority {
		if v := tags.Get(key); v != "" {
			return v
		}
	}
	return c.Fallback
}

// Label translates a raw category. Unknown categories get a pin and a title-cased name.
func (c *Catalog) Label(category string) string {
	if label, ok := c.Labels[category]; ok {
		return label
	}
	return fallbackIcon + " " + titleCase(category)
}

// titleCase upper-cases letters that follow a non-letter and lower-cases the rest,
// so "guest_house" becomes "Guest_House".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

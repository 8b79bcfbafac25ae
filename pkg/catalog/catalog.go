// Package catalog holds the substitute and category tables used to widen
// ingredient matching. A Catalog is immutable once built.
package catalog

import (
	"sort"
	"strings"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/normalize"
)

// Base confidences of catalog substitutes, before the matcher's discount.
const (
	DirectConfidence   = 0.8
	CategoryConfidence = 0.6
)

// Category is a named group of interchangeable ingredients
type Category struct {
	Name    string   `koanf:"name"`
	Members []string `koanf:"members"`
}

// Substitute is a known replacement for an ingredient
type Substitute struct {
	Name       string
	Confidence float64
}

type category struct {
	name       string
	members    []string
	normalized []string
}

// Catalog is the read-only lookup of substitutes and categories
type Catalog struct {
	substitutes map[string][]string
	categories  []category
}

// New builds a catalog. Substitute keys are normalized, input slices are copied.
func New(substitutes map[string][]string, categories []Category) *Catalog {
	c := &Catalog{
		substitutes: make(map[string][]string, len(substitutes)),
		categories:  make([]category, 0, len(categories)),
	}

	keys := make([]string, 0, len(substitutes))
	for key := range substitutes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		norm := normalize.Ingredient(key)
		if norm == "" {
			continue
		}
		c.substitutes[norm] = append(c.substitutes[norm], substitutes[key]...)
	}

	for _, cat := range categories {
		entry := category{
			name:       cat.Name,
			members:    append([]string(nil), cat.Members...),
			normalized: make([]string, 0, len(cat.Members)),
		}
		for _, m := range cat.Members {
			entry.normalized = append(entry.normalized, normalize.Ingredient(m))
		}
		c.categories = append(c.categories, entry)
	}

	return c
}

// CategoriesOf returns the names of the categories an ingredient relates to.
// An ingredient relates to a category when its normalized name and a member's
// contain one another.
func (c *Catalog) CategoriesOf(name string) []string {
	norm := normalize.Ingredient(name)
	var out []string
	for _, cat := range c.categories {
		if cat.relatesTo(norm) {
			out = append(out, cat.name)
		}
	}
	return out
}

// CategoryMatch finds the first category that relates to the normalized
// name required and to one of the normalized candidates. It returns the
// category name and the index of the first such candidate.
func (c *Catalog) CategoryMatch(required string, candidates []string) (string, int, bool) {
	for _, cat := range c.categories {
		if !cat.relatesTo(required) {
			continue
		}
		for i, candidate := range candidates {
			if cat.relatesTo(candidate) {
				return cat.name, i, true
			}
		}
	}
	return "", -1, false
}

// Substitutes returns the known substitutes of an ingredient: direct ones
// first, then the other members of each category it belongs to.
func (c *Catalog) Substitutes(name string) []Substitute {
	norm := normalize.Ingredient(name)
	if norm == "" {
		return nil
	}

	var out []Substitute
	seen := make(map[string]bool)
	add := func(sub string, confidence float64) {
		key := normalize.Ingredient(sub)
		if key == "" || key == norm || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Substitute{Name: sub, Confidence: confidence})
	}

	for _, sub := range c.substitutes[norm] {
		add(sub, DirectConfidence)
	}

	for _, cat := range c.categories {
		if !cat.relatesTo(norm) {
			continue
		}
		for i, member := range cat.members {
			if Related(norm, cat.normalized[i]) {
				continue
			}
			add(member, CategoryConfidence)
		}
	}

	return out
}

func (cat category) relatesTo(norm string) bool {
	for _, member := range cat.normalized {
		if Related(norm, member) {
			return true
		}
	}
	return false
}

// Related reports whether two normalized names contain one another.
// Empty names never relate.
func Related(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Package matching finds the pantry ingredient that best satisfies a recipe
// ingredient. Strategies run in a fixed order, each gated by the confidence
// already reached, and the strongest candidate wins.
package matching

import (
	"fmt"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/catalog"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/normalize"
)

// Confidence of each strategy. Substitute confidence is the catalog
// confidence scaled by SubstituteDiscount.
const (
	ExactConfidence    = 1.0
	FuzzyConfidence    = 0.8
	CategoryConfidence = 0.6
	SubstituteDiscount = 0.8
)

// candidate is a match proposed by a strategy
type candidate struct {
	matchType  models.MatchType
	index      int // into the available slice
	confidence float64
	notes      string
}

type request struct {
	required           string
	normalized         string
	available          []models.AvailableIngredient
	names              []string // normalized, parallel to available
	includeSubstitutes bool
}

// strategy proposes at most one candidate. It only runs while the best
// confidence so far is below its gate.
type strategy struct {
	matchType models.MatchType
	gate      float64
	find      func(m *Matcher, req request) (candidate, bool)
}

// Matcher matches required ingredients against pantry contents
type Matcher struct {
	catalog    *catalog.Catalog
	strategies []strategy
}

// New creates a matcher backed by the given catalog
func New(cat *catalog.Catalog) *Matcher {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Matcher{
		catalog: cat,
		strategies: []strategy{
			{matchType: models.MatchExact, gate: ExactConfidence + 1, find: (*Matcher).exact},
			{matchType: models.MatchFuzzy, gate: ExactConfidence + 1, find: (*Matcher).fuzzy},
			{matchType: models.MatchCategory, gate: 0.7, find: (*Matcher).category},
			{matchType: models.MatchSubstitute, gate: 0.6, find: (*Matcher).substitute},
		},
	}
}

// Match returns the best match for required among available.
// An exact match returns immediately; otherwise the highest confidence
// candidate wins and ties keep the first one found.
func (m *Matcher) Match(required string, available []models.AvailableIngredient, includeSubstitutes bool) models.IngredientMatch {
	req := request{
		required:           required,
		normalized:         normalize.Ingredient(required),
		available:          available,
		includeSubstitutes: includeSubstitutes,
	}
	if req.normalized == "" || len(available) == 0 {
		return unmatched(required)
	}
	req.names = make([]string, len(available))
	for i, a := range available {
		req.names[i] = normalizedName(a)
	}

	var best candidate
	found := false
	for _, s := range m.strategies {
		if found && best.confidence >= s.gate {
			continue
		}
		c, ok := s.find(m, req)
		if !ok || c.confidence <= 0 {
			continue
		}
		if c.confidence >= ExactConfidence {
			return m.build(req, c)
		}
		if !found || c.confidence > best.confidence {
			best, found = c, true
		}
	}

	if !found {
		return unmatched(required)
	}
	return m.build(req, best)
}

func (m *Matcher) exact(req request) (candidate, bool) {
	for i, name := range req.names {
		if name == req.normalized {
			return candidate{
				matchType:  models.MatchExact,
				index:      i,
				confidence: ExactConfidence,
				notes:      "Exact match",
			}, true
		}
	}
	return candidate{}, false
}

// fuzzy takes the first substring relation in pantry order
func (m *Matcher) fuzzy(req request) (candidate, bool) {
	for i, name := range req.names {
		if catalog.Related(req.normalized, name) {
			return candidate{
				matchType:  models.MatchFuzzy,
				index:      i,
				confidence: FuzzyConfidence,
				notes:      fmt.Sprintf("Similar ingredient: %s", req.available[i].Name),
			}, true
		}
	}
	return candidate{}, false
}

func (m *Matcher) category(req request) (candidate, bool) {
	name, i, ok := m.catalog.CategoryMatch(req.normalized, req.names)
	if !ok {
		return candidate{}, false
	}
	return candidate{
		matchType:  models.MatchCategory,
		index:      i,
		confidence: CategoryConfidence,
		notes:      fmt.Sprintf("Same category (%s): %s", name, req.available[i].Name),
	}, true
}

func (m *Matcher) substitute(req request) (candidate, bool) {
	if !req.includeSubstitutes {
		return candidate{}, false
	}

	var best candidate
	found := false
	for _, sub := range m.catalog.Substitutes(req.normalized) {
		subNorm := normalize.Ingredient(sub.Name)
		for i, name := range req.names {
			if name != subNorm {
				continue
			}
			confidence := sub.Confidence * SubstituteDiscount
			if !found || confidence > best.confidence {
				best = candidate{
					matchType:  models.MatchSubstitute,
					index:      i,
					confidence: confidence,
					notes:      fmt.Sprintf("Substitute: %s for %s", req.available[i].Name, req.required),
				}
				found = true
			}
			break
		}
	}
	return best, found
}

func (m *Matcher) build(req request, c candidate) models.IngredientMatch {
	a := req.available[c.index]
	quantity := a.Quantity
	return models.IngredientMatch{
		RequiredIngredient:  req.required,
		AvailableIngredient: a.Name,
		MatchType:           c.matchType,
		MatchConfidence:     c.confidence,
		IsMatched:           true,
		QuantityAvailable:   &quantity,
		Unit:                a.Unit,
		Notes:               c.notes,
	}
}

func unmatched(required string) models.IngredientMatch {
	return models.IngredientMatch{
		RequiredIngredient: required,
		MatchConfidence:    0,
		IsMatched:          false,
		Notes:              "No matching ingredient available",
	}
}

// normalizedName tolerates records built without a normalized name
func normalizedName(a models.AvailableIngredient) string {
	if a.NormalizedName != "" {
		return a.NormalizedName
	}
	return normalize.Ingredient(a.Name)
}

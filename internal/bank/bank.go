// Package bank holds the static question bank: eight readiness dimensions,
// each with five concepts. The bank is authorial content, so it lives in an
// embedded JSON resource rather than in code, and is parsed and validated
// once at startup.
package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teundejong/mlready/internal/domain"
)

//go:embed bank.json
var embeddedBank []byte

const (
	// DimensionCount and ConceptsPerDimension are structural invariants of
	// the assessment; Validate enforces them on every loaded bank.
	DimensionCount       = 8
	ConceptsPerDimension = 5
)

// ChecklistPrompts holds the four human-readable checklist statements shown
// for a concept. The first three describe increasing maturity; Realtime is
// the level-5 escalation condition.
type ChecklistPrompts struct {
	A        string `json:"a"`
	B        string `json:"b"`
	C        string `json:"c"`
	Realtime string `json:"realtime"`
}

// Concept is one question within a dimension.
type Concept struct {
	Name     string           `json:"name"`
	Question string           `json:"question"`
	Checks   ChecklistPrompts `json:"checks"`
	// Levels holds the five level descriptions; index i describes level i+1.
	Levels []string `json:"levels"`
}

// LevelDescription returns the descriptive text for the given level.
func (c *Concept) LevelDescription(l domain.Level) string {
	if !l.Valid() || int(l) > len(c.Levels) {
		return ""
	}
	return c.Levels[l-1]
}

// Dimension is one of the eight top-level readiness categories.
type Dimension struct {
	Name         string       `json:"name"`
	MinimumLevel domain.Level `json:"minimum_level"`
	Concepts     []Concept    `json:"concepts"`
}

// Concept returns the named concept, or nil if the dimension has none.
func (d *Dimension) Concept(name string) *Concept {
	for i := range d.Concepts {
		if d.Concepts[i].Name == name {
			return &d.Concepts[i]
		}
	}
	return nil
}

// Bank is the full validated question bank.
type Bank struct {
	// AnchorDimension names the dimension whose level anchors the flat
	// ML-ready rule (it must reach level 4).
	AnchorDimension string      `json:"anchor_dimension"`
	Dimensions      []Dimension `json:"dimensions"`
}

// Load parses and validates the embedded question bank.
func Load() (*Bank, error) {
	return parse(embeddedBank)
}

// LoadFile parses and validates a question bank from an external JSON file,
// allowing the bank to be swapped without rebuilding.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}
	return parse(data)
}

// LoadReader parses and validates a question bank from r.
func LoadReader(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Bank, error) {
	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}
	if errs := b.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid question bank: %s", strings.Join(msgs, "; "))
	}
	return &b, nil
}

// Validate checks the structural invariants of the bank and returns all
// violations found.
func (b *Bank) Validate() []error {
	var errs []error

	if len(b.Dimensions) != DimensionCount {
		errs = append(errs, fmt.Errorf("expected %d dimensions, got %d", DimensionCount, len(b.Dimensions)))
	}
	if b.Dimension(b.AnchorDimension) == nil {
		errs = append(errs, fmt.Errorf("anchor_dimension %q not found among dimensions", b.AnchorDimension))
	}

	seen := make(map[string]bool)
	for _, d := range b.Dimensions {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("dimension with empty name"))
			continue
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("duplicate dimension %q", d.Name))
		}
		seen[d.Name] = true

		if !d.MinimumLevel.Valid() {
			errs = append(errs, fmt.Errorf("dimension %q: minimum level %d out of range", d.Name, d.MinimumLevel))
		}
		if len(d.Concepts) != ConceptsPerDimension {
			errs = append(errs, fmt.Errorf("dimension %q: expected %d concepts, got %d", d.Name, ConceptsPerDimension, len(d.Concepts)))
		}

		seenConcepts := make(map[string]bool)
		for _, c := range d.Concepts {
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("dimension %q: concept with empty name", d.Name))
				continue
			}
			if seenConcepts[c.Name] {
				errs = append(errs, fmt.Errorf("dimension %q: duplicate concept %q", d.Name, c.Name))
			}
			seenConcepts[c.Name] = true

			if c.Question == "" {
				errs = append(errs, fmt.Errorf("%s / %s: empty question", d.Name, c.Name))
			}
			if len(c.Levels) != 5 {
				errs = append(errs, fmt.Errorf("%s / %s: expected 5 level descriptions, got %d", d.Name, c.Name, len(c.Levels)))
			}
			if c.Checks.A == "" || c.Checks.B == "" || c.Checks.C == "" || c.Checks.Realtime == "" {
				errs = append(errs, fmt.Errorf("%s / %s: incomplete checklist prompts", d.Name, c.Name))
			}
		}
	}

	return errs
}

// Dimension returns the named dimension, or nil.
func (b *Bank) Dimension(name string) *Dimension {
	for i := range b.Dimensions {
		if b.Dimensions[i].Name == name {
			return &b.Dimensions[i]
		}
	}
	return nil
}

// Concept returns the concept for the given (dimension, concept) pair, or nil.
func (b *Bank) Concept(dimension, concept string) *Concept {
	d := b.Dimension(dimension)
	if d == nil {
		return nil
	}
	return d.Concept(concept)
}

// Contains reports whether the (dimension, concept) pair exists in the bank.
func (b *Bank) Contains(key domain.ConceptKey) bool {
	return b.Concept(key.Dimension, key.Concept) != nil
}

// TotalQuestions returns the number of (dimension, concept) pairs.
func (b *Bank) TotalQuestions() int {
	n := 0
	for _, d := range b.Dimensions {
		n += len(d.Concepts)
	}
	return n
}

// Keys returns every (dimension, concept) pair in bank order.
func (b *Bank) Keys() []domain.ConceptKey {
	keys := make([]domain.ConceptKey, 0, b.TotalQuestions())
	for _, d := range b.Dimensions {
		for _, c := range d.Concepts {
			keys = append(keys, domain.ConceptKey{Dimension: d.Name, Concept: c.Name})
		}
	}
	return keys
}

// MinimumLevels returns the per-dimension threshold table.
func (b *Bank) MinimumLevels() map[string]domain.Level {
	m := make(map[string]domain.Level, len(b.Dimensions))
	for _, d := range b.Dimensions {
		m[d.Name] = d.MinimumLevel
	}
	return m
}

// Missing returns, in bank order, every pair without a resolved final level
// in the response set.
func (b *Bank) Missing(rs domain.ResponseSet) []domain.ConceptKey {
	var missing []domain.ConceptKey
	for _, key := range b.Keys() {
		a := rs.Get(key)
		if a == nil {
			missing = append(missing, key)
			continue
		}
		if _, ok := a.FinalLevel(); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// ApplyMinimumOverrides replaces per-dimension minimum levels from the given
// table. Unknown dimension names and out-of-range levels are rejected.
func (b *Bank) ApplyMinimumOverrides(overrides map[string]domain.Level) error {
	for name, lvl := range overrides {
		d := b.Dimension(name)
		if d == nil {
			return fmt.Errorf("minimum level override for unknown dimension %q", name)
		}
		if !lvl.Valid() {
			return fmt.Errorf("minimum level override for %q: level %d out of range", name, lvl)
		}
		d.MinimumLevel = lvl
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
)

// resolveAssessment turns the --assessment flag into a concrete assessment.
// An empty flag means the most recently touched one.
func resolveAssessment(ctx context.Context, app *App) (*domain.Assessment, error) {
	input := strings.TrimSpace(app.AssessmentRef)
	if input == "" {
		a, err := app.Assessments.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("no assessment found; create one with `mlready new`")
		}
		return a, nil
	}

	assessments, err := app.Assessments.List(ctx)
	if err != nil {
		return nil, err
	}

	// 1. Exact ID match
	for _, a := range assessments {
		if a.ID == input {
			return a, nil
		}
	}

	// 2. ID prefix match
	var matches []*domain.Assessment
	for _, a := range assessments {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("assessment not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("assessment ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveDimension matches a dimension by exact name, leading number ("3"
// matches "3. Technology"), or unique case-insensitive substring.
func resolveDimension(b *bank.Bank, input string) (*bank.Dimension, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("dimension is required")
	}

	for i := range b.Dimensions {
		if strings.EqualFold(b.Dimensions[i].Name, input) {
			return &b.Dimensions[i], nil
		}
	}
	for i := range b.Dimensions {
		if strings.HasPrefix(b.Dimensions[i].Name, input+".") {
			return &b.Dimensions[i], nil
		}
	}

	var matches []*bank.Dimension
	for i := range b.Dimensions {
		if strings.Contains(strings.ToLower(b.Dimensions[i].Name), strings.ToLower(input)) {
			matches = append(matches, &b.Dimensions[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("dimension not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("dimension %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveConcept matches a concept within a dimension by exact name or unique
// case-insensitive substring.
func resolveConcept(d *bank.Dimension, input string) (*bank.Concept, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("concept is required")
	}

	for i := range d.Concepts {
		if strings.EqualFold(d.Concepts[i].Name, input) {
			return &d.Concepts[i], nil
		}
	}

	var matches []*bank.Concept
	for i := range d.Concepts {
		if strings.Contains(strings.ToLower(d.Concepts[i].Name), strings.ToLower(input)) {
			matches = append(matches, &d.Concepts[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("concept not found in %s: %q", d.Name, input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("concept %q is ambiguous in %s (%d matches)", input, d.Name, len(matches))
	}
}

// resolveConceptKey resolves both halves of a (dimension, concept) reference.
func resolveConceptKey(b *bank.Bank, dimInput, conceptInput string) (domain.ConceptKey, *bank.Concept, error) {
	d, err := resolveDimension(b, dimInput)
	if err != nil {
		return domain.ConceptKey{}, nil, err
	}
	c, err := resolveConcept(d, conceptInput)
	if err != nil {
		return domain.ConceptKey{}, nil, err
	}
	return domain.ConceptKey{Dimension: d.Name, Concept: c.Name}, c, nil
}

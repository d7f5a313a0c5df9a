// Package transform derives hypothetical offers from a base salary input,
// e.g. a 20% hike or the same package in another city.
package transform

import (
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// OfferTransform is a composable change to a salary input.
type OfferTransform interface {
	// Apply returns the modified input. The argument is not changed.
	Apply(base domain.SalaryInput) (domain.SalaryInput, error)

	// Name returns a short identifier, e.g. "hike".
	Name() string

	// Description is a human-readable summary used as the offer description.
	Description() string

	// Validate checks parameters against base without applying.
	Validate(base domain.SalaryInput) error
}

// ApplyTransforms applies transforms in order, each receiving the previous output.
func ApplyTransforms(base domain.SalaryInput, transforms []OfferTransform) (domain.SalaryInput, error) {
	current := base
	for i, t := range transforms {
		if t == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError reports a rejected parameter.
type TransformError struct {
	TransformName string
	Reason        string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s: %s", e.TransformName, e.Reason)
}

package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/validation"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of salary input and offer files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadSalaryInput loads a single salary input from a YAML or JSON file.
func (ip *InputParser) LoadSalaryInput(filename string) (*domain.SalaryInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.SalaryInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	input, err = validation.PrepareSalaryInput(input)
	if err != nil {
		return nil, fmt.Errorf("salary input validation failed: %w", err)
	}
	return &input, nil
}

// LoadOffers loads an offer set and validates every offer in it.
func (ip *InputParser) LoadOffers(filename string) (*domain.OfferSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var set domain.OfferSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateOffers(&set); err != nil {
		return nil, fmt.Errorf("offers validation failed: %w", err)
	}
	return &set, nil
}

// ValidateOffers sanitizes and validates each offer in place.
func (ip *InputParser) ValidateOffers(set *domain.OfferSet) error {
	if len(set.Offers) == 0 {
		return fmt.Errorf("no offers provided")
	}

	seen := make(map[string]bool, len(set.Offers))
	for i := range set.Offers {
		offer := &set.Offers[i]
		if offer.Name == "" {
			return fmt.Errorf("offer %d: name is required", i)
		}
		if seen[offer.Name] {
			return fmt.Errorf("offer %d: duplicate name %q", i, offer.Name)
		}
		seen[offer.Name] = true

		prepared, err := validation.PrepareSalaryInput(offer.Input)
		if err != nil {
			return fmt.Errorf("offer %d (%s): %w", i, offer.Name, err)
		}
		offer.Input = prepared
	}

	if _, ok := set.BaseOffer(); !ok {
		return fmt.Errorf("base offer %q not found", set.Base)
	}
	return nil
}

package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// TemplateRegistry manages named what-if offers.
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms.
type Template struct {
	Name        string
	Description string
	Transforms  []OfferTransform
}

// NewTemplateRegistry creates an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template.
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive).
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns the registered names, sorted.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates returns the common negotiation scenarios.
func CreateBuiltInTemplates() *TemplateRegistry {
	r := NewTemplateRegistry()
	for _, pct := range []int64{10, 20, 30, 50} {
		r.Register(Template{
			Name:        fmt.Sprintf("hike_%d", pct),
			Description: fmt.Sprintf("Fixed pay raised by %d%%", pct),
			Transforms:  []OfferTransform{&Hike{Percent: decimal.NewFromInt(pct)}},
		})
	}
	for _, city := range []string{"Bangalore", "Mumbai", "Delhi", "Hyderabad", "Pune", "Chennai"} {
		r.Register(Template{
			Name:        "move_" + strings.ToLower(city),
			Description: "Same package in " + city,
			Transforms:  []OfferTransform{&Relocate{City: city}},
		})
	}
	r.Register(Template{
		Name:        "all_fixed",
		Description: "Variable pay folded into fixed pay",
		Transforms:  []OfferTransform{&SetVariable{Amount: decimal.Zero, KeepCTC: true}},
	})
	return r
}

// Alternatives builds one offer per spec from base. A spec is a template name
// or a transform spec; "+" chains several, e.g. "hike_20+move_mumbai".
func Alternatives(base domain.Offer, specs []string) ([]domain.Offer, error) {
	templates := CreateBuiltInTemplates()
	registry := NewTransformRegistry()

	offers := make([]domain.Offer, 0, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		var transforms []OfferTransform
		var descriptions []string
		for _, part := range strings.Split(spec, "+") {
			if t, ok := templates.Get(part); ok {
				transforms = append(transforms, t.Transforms...)
				descriptions = append(descriptions, t.Description)
				continue
			}
			t, err := registry.ParseTransformSpec(part)
			if err != nil {
				return nil, fmt.Errorf("%q is neither a template nor a transform: %w", part, err)
			}
			transforms = append(transforms, t)
			descriptions = append(descriptions, t.Description())
		}

		input, err := ApplyTransforms(base.Input, transforms)
		if err != nil {
			return nil, err
		}
		offers = append(offers, domain.Offer{
			Name:        spec,
			Description: strings.Join(descriptions, "; "),
			Input:       input,
		})
	}
	return offers, nil
}

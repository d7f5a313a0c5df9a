package domain

// Offer is a named salary package to evaluate.
type Offer struct {
	Name        string      `yaml:"name" json:"name" validate:"required"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Input       SalaryInput `yaml:"input" json:"input"`
}

// OfferSet is the content of an offers file. Base names the offer the others
// are compared against; when empty the first offer is the base.
type OfferSet struct {
	Base   string  `yaml:"base,omitempty" json:"base,omitempty"`
	Offers []Offer `yaml:"offers" json:"offers"`
}

// BaseOffer returns the offer named by Base, or the first offer.
func (s *OfferSet) BaseOffer() (*Offer, bool) {
	if len(s.Offers) == 0 {
		return nil, false
	}
	if s.Base == "" {
		return &s.Offers[0], true
	}
	for i := range s.Offers {
		if s.Offers[i].Name == s.Base {
			return &s.Offers[i], true
		}
	}
	return nil, false
}

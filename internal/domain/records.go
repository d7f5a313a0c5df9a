package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryCalculation is a stored breakdown together with the input that
// produced it and the requesting user.
type SalaryCalculation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	City            string          `json:"city"`
	Designation     string          `json:"designation,omitempty"`
	GithubProfile   string          `json:"githubProfile,omitempty"`
	LinkedinProfile string          `json:"linkedinProfile,omitempty"`
	OfferInHand     decimal.Decimal `json:"offerInHand"`
	CreatedAt       time.Time       `json:"createdAt"`
	SalaryBreakdown
}

// ReferenceItem is an entry of the city, company or designation lists.
type ReferenceItem struct {
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	IsActive   bool   `json:"isActive"`
	UsageCount int64  `json:"usageCount"`
}

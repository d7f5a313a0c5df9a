package store

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// SeedResult counts rows inserted by Seed.
type SeedResult struct {
	Cities       int `json:"cities"`
	Companies    int `json:"companies"`
	Designations int `json:"designations"`
	CityTax      int `json:"cityTax"`
}

// Seed inserts the built-in reference lists and city tax rows. Existing rows
// are left alone, so running it twice inserts nothing the second time.
func Seed(ctx context.Context, s interface {
	ReferenceRepository
	CityTaxRepository
}, cityTax []domain.CityTaxProfile) (SeedResult, error) {
	var res SeedResult

	lists := []struct {
		kind  ReferenceKind
		items []domain.ReferenceItem
		count *int
	}{
		{KindCity, SeedCities(), &res.Cities},
		{KindCompany, SeedCompanies(), &res.Companies},
		{KindDesignation, SeedDesignations(), &res.Designations},
	}
	for _, l := range lists {
		for _, item := range l.items {
			created, err := s.UpsertReference(ctx, l.kind, item)
			if err != nil {
				return res, fmt.Errorf("seeding %s %q: %w", l.kind, item.Name, err)
			}
			if created {
				*l.count++
			}
		}
	}

	for _, p := range cityTax {
		_, found, err := s.LookupCityTax(ctx, p.City)
		if err != nil {
			return res, fmt.Errorf("seeding city tax %q: %w", p.City, err)
		}
		if found {
			continue
		}
		if _, err := s.CreateCityTax(ctx, p); err != nil {
			return res, fmt.Errorf("seeding city tax %q: %w", p.City, err)
		}
		res.CityTax++
	}
	return res, nil
}

func names(category string, ns ...string) []domain.ReferenceItem {
	out := make([]domain.ReferenceItem, len(ns))
	for i, n := range ns {
		out[i] = domain.ReferenceItem{Name: n, Category: category, IsActive: true}
	}
	return out
}

// SeedCities returns the tier 1 and tier 2 cities.
func SeedCities() []domain.ReferenceItem {
	return append(
		names("Tier 1", "Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata",
			"Pune", "Ahmedabad", "Gurgaon", "Noida"),
		names("Tier 2", "Jaipur", "Surat", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
			"Bhopal", "Visakhapatnam", "Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra",
			"Nashik", "Faridabad", "Meerut", "Rajkot", "Varanasi", "Srinagar", "Chandigarh",
			"Coimbatore", "Kochi", "Bhubaneswar", "Guwahati", "Mysore", "Dehradun")...,
	)
}

// SeedCompanies returns well-known employers grouped by category.
func SeedCompanies() []domain.ReferenceItem {
	var out []domain.ReferenceItem
	out = append(out, names("Tech", "Google", "Microsoft", "Amazon", "Apple", "Meta (Facebook)",
		"Netflix", "Oracle", "IBM", "Salesforce", "Adobe", "Intel", "NVIDIA")...)
	out = append(out, names("IT Services", "TCS", "Infosys", "Wipro", "HCL Technologies",
		"Tech Mahindra", "Cognizant", "Accenture", "Capgemini", "Mphasis", "Persistent Systems")...)
	out = append(out, names("E-commerce", "Flipkart", "Amazon India", "Myntra", "Meesho")...)
	out = append(out, names("Fintech", "Paytm", "PhonePe", "Razorpay", "CRED", "Groww", "Zerodha")...)
	out = append(out, names("SaaS", "Freshworks", "Zoho", "Chargebee", "Postman", "BrowserStack")...)
	out = append(out, names("Banking", "HDFC Bank", "ICICI Bank", "Axis Bank", "Kotak Mahindra Bank", "SBI")...)
	out = append(out, names("Investment Banking", "Goldman Sachs", "Morgan Stanley", "JPMorgan Chase",
		"Deutsche Bank", "Barclays")...)
	return out
}

// SeedDesignations returns common job titles grouped by category.
func SeedDesignations() []domain.ReferenceItem {
	var out []domain.ReferenceItem
	out = append(out, names("Engineering", "Software Engineer", "Senior Software Engineer",
		"Lead Software Engineer", "Principal Software Engineer", "Staff Software Engineer",
		"Software Development Engineer", "Software Development Engineer II", "Full Stack Developer",
		"Frontend Developer", "Backend Developer", "Mobile Developer", "DevOps Engineer",
		"Site Reliability Engineer (SRE)", "Cloud Engineer")...)
	out = append(out, names("Data", "Data Engineer", "Data Scientist", "Data Analyst",
		"Business Analyst", "Machine Learning Engineer", "AI Engineer")...)
	out = append(out, names("Product", "Product Manager", "Senior Product Manager",
		"Associate Product Manager", "Product Owner")...)
	out = append(out, names("Management", "Engineering Manager", "Director of Engineering", "CTO")...)
	return out
}

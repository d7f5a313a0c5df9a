package ats

import (
	"math"
	"regexp"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// recommendedOrder is the section order recruiters and parsers expect.
var recommendedOrder = []string{"Contact", "Summary", "Experience", "Skills", "Projects", "Education", "Certifications"}

var headingPatterns = map[string]*regexp.Regexp{
	"Contact":        regexp.MustCompile(`(?i)^(contact|contact information|personal details)\s*:?$`),
	"Summary":        regexp.MustCompile(`(?i)^(summary|profile|objective|about me)\s*:?$`),
	"Experience":     regexp.MustCompile(`(?i)^(experience|work experience|professional experience|employment( history)?)\s*:?$`),
	"Skills":         regexp.MustCompile(`(?i)^(skills|technical skills|core skills)\s*:?$`),
	"Projects":       regexp.MustCompile(`(?i)^(projects|personal projects)\s*:?$`),
	"Education":      regexp.MustCompile(`(?i)^(education|academics|qualifications)\s*:?$`),
	"Certifications": regexp.MustCompile(`(?i)^(certifications?|licenses)\s*:?$`),
}

var bulletPrefix = regexp.MustCompile(`^\s*([-*•▪◦]|\d+[.)])\s+`)

const maxBulletRewrites = 10

// Enhance builds premium advice for text given its stored result.
func (sc *Scorer) Enhance(text string, result domain.AtsResult) domain.PremiumEnhancements {
	companies := sc.Companies
	if companies == nil {
		companies = DefaultCompanies
	}
	lower := strings.ToLower(text)

	out := domain.PremiumEnhancements{
		MissingKeywords: make(map[string][]string, len(companies)+1),
		BulletRewrites:  []domain.BulletRewrite{},
		SectionAdvice:   []string{},
	}
	missingGeneral := missing(lower, generalKeywords)
	out.MissingKeywords["general"] = missingGeneral
	for _, c := range companies {
		out.MissingKeywords[c.Key] = missing(lower, c.Keywords)
	}

	out.BulletRewrites = bulletRewrites(text)
	out.SectionOrder, out.SectionAdvice = sectionAdvice(text)
	out.ProjectedScore = projectedScore(result, len(missingGeneral))
	return out
}

func bulletRewrites(text string) []domain.BulletRewrite {
	rewrites := []domain.BulletRewrite{}
	for _, line := range strings.Split(text, "\n") {
		if !bulletPrefix.MatchString(line) {
			continue
		}
		body := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if body == "" {
			continue
		}
		lower := strings.ToLower(body)

		var issues []string
		startsWithVerb := false
		for _, v := range actionVerbs {
			if strings.HasPrefix(lower, v) {
				startsWithVerb = true
				break
			}
		}
		if !startsWithVerb {
			issues = append(issues, "does not open with an action verb")
		}
		if !quantifiablePattern.MatchString(body) {
			issues = append(issues, "has no measurable result")
		}
		if len(issues) == 0 {
			continue
		}

		hint := "Start with a verb such as led, built or optimized and state the outcome with a number"
		if startsWithVerb {
			hint = "Add the measurable impact, e.g. \"reduced latency by 30%\" or \"served 2 million users\""
		} else if len(issues) == 1 {
			hint = "Lead with what you did, e.g. \"Delivered ...\", \"Designed ...\""
		}
		rewrites = append(rewrites, domain.BulletRewrite{Original: body, Issues: issues, Hint: hint})
		if len(rewrites) == maxBulletRewrites {
			break
		}
	}
	return rewrites
}

// sectionAdvice returns the headings found, in document order, and advice on
// reordering and missing sections.
func sectionAdvice(text string) ([]string, []string) {
	found := []string{}
	seen := map[string]bool{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, name := range recommendedOrder {
			if !seen[name] && headingPatterns[name].MatchString(line) {
				seen[name] = true
				found = append(found, name)
			}
		}
	}

	advice := []string{}
	rank := make(map[string]int, len(recommendedOrder))
	for i, name := range recommendedOrder {
		rank[name] = i
	}
	for i := 1; i < len(found); i++ {
		if rank[found[i]] < rank[found[i-1]] {
			advice = append(advice, "Move "+found[i]+" above "+found[i-1])
		}
	}
	for _, name := range []string{"Summary", "Experience", "Skills", "Education"} {
		if !seen[name] {
			advice = append(advice, "Add a clearly titled "+name+" section")
		}
	}
	return found, advice
}

// projectedScore estimates the score once the top missing keywords, metrics
// and action verbs are added.
func projectedScore(r domain.AtsResult, missingGeneral int) int {
	total := r.TotalKeywords
	if total == 0 {
		total = len(generalKeywords)
	}
	gain := float64(min(missingGeneral, 10)) / float64(total) * 40
	if r.DetailedAnalysis.QuantifiableResults == 0 {
		gain += 10
	}
	if r.DetailedAnalysis.ActionVerbUsage < 50 {
		gain += float64(50-r.DetailedAnalysis.ActionVerbUsage) / 100 * 10
	}
	return min(int(math.Round(float64(r.Score)+gain)), 100)
}

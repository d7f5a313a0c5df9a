// Package ats scores resumes for applicant-tracking-system friendliness,
// rate limits checks per user and produces premium rewrite advice.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

var (
	contactPattern      = regexp.MustCompile(`(?i)email|phone|contact|address`)
	experiencePattern   = regexp.MustCompile(`(?i)experience|work|employment|position`)
	educationPattern    = regexp.MustCompile(`(?i)education|degree|university|college|bachelor|master`)
	skillsPattern       = regexp.MustCompile(`(?i)skills|technical|proficient|expert`)
	quantifiablePattern = regexp.MustCompile(`(?i)\d+%|\d+\s*(million|billion|thousand|k|m|b)|increased by|decreased by|reduced by|improved by`)
)

// Scorer computes an AtsResult from resume text. The zero value scores
// against DefaultCompanies.
type Scorer struct {
	Companies []CompanyProfile
}

// NewScorer returns a Scorer using the built-in company profiles.
func NewScorer() *Scorer {
	return &Scorer{Companies: DefaultCompanies}
}

type sections struct {
	contact, experience, education, skills bool
}

func detectSections(text string) sections {
	return sections{
		contact:    contactPattern.MatchString(text),
		experience: experiencePattern.MatchString(text),
		education:  educationPattern.MatchString(text),
		skills:     skillsPattern.MatchString(text),
	}
}

func (s sections) completeness() int {
	n := 0
	for _, ok := range []bool{s.contact, s.experience, s.education, s.skills} {
		if ok {
			n++
		}
	}
	return percent(n, 4)
}

// matching returns the keywords contained in lower.
func matching(lower string, keywords []string) []string {
	var out []string
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			out = append(out, k)
		}
	}
	return out
}

func missing(lower string, keywords []string) []string {
	out := []string{}
	for _, k := range keywords {
		if !strings.Contains(lower, k) {
			out = append(out, k)
		}
	}
	return out
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

// MatchLevelFor buckets a company score.
func MatchLevelFor(score int) domain.MatchLevel {
	switch {
	case score >= 70:
		return domain.MatchExcellent
	case score >= 50:
		return domain.MatchGood
	case score >= 30:
		return domain.MatchFair
	default:
		return domain.MatchNeedsImprovement
	}
}

// Score analyses text. FileSize is left for the caller to fill.
func (sc *Scorer) Score(text string) domain.AtsResult {
	companies := sc.Companies
	if companies == nil {
		companies = DefaultCompanies
	}

	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	keywordMatches := len(matching(lower, generalKeywords))
	totalKeywords := len(generalKeywords)

	sec := detectSections(text)
	sectionCompleteness := sec.completeness()

	foundVerbs := matching(lower, actionVerbs)
	actionVerbUsage := min(percent(len(foundVerbs), len(actionVerbs)), 100)

	hasQuantifiable := quantifiablePattern.MatchString(text)
	quantifiable := 0
	if hasQuantifiable {
		quantifiable = 100
	}

	foundTech := matching(lower, techKeywords)
	technicalSkills := min(percent(len(foundTech), len(techKeywords)), 100)

	density := 0.0
	if wordCount > 0 {
		density = math.Round(float64(keywordMatches)/float64(wordCount)*1000*100) / 100
	}

	score := float64(keywordMatches)/float64(totalKeywords)*40 +
		math.Min(float64(wordCount)/500, 1)*20 +
		float64(sectionCompleteness)/100*20 +
		float64(actionVerbUsage)/100*10 +
		float64(quantifiable)/100*10

	res := domain.AtsResult{
		Score:              int(math.Round(score)),
		Suggestions:        []string{},
		Strengths:          []string{},
		Weaknesses:         []string{},
		KeywordMatches:     keywordMatches,
		TotalKeywords:      totalKeywords,
		WordCount:          wordCount,
		CompanyComparisons: make(map[string]domain.CompanyComparison, len(companies)),
		DetailedAnalysis: domain.DetailedAnalysis{
			KeywordDensity:      density,
			SectionCompleteness: sectionCompleteness,
			ActionVerbUsage:     actionVerbUsage,
			QuantifiableResults: quantifiable,
			TechnicalSkills:     technicalSkills,
		},
	}

	weak := func(weakness, suggestion string) {
		res.Weaknesses = append(res.Weaknesses, weakness)
		res.Suggestions = append(res.Suggestions, suggestion)
	}
	strong := func(s string) { res.Strengths = append(res.Strengths, s) }

	if float64(keywordMatches) < float64(totalKeywords)*0.3 {
		weak("Low keyword density - add more relevant skills and keywords",
			"Include more industry-specific keywords and technical skills")
	} else {
		strong("Good keyword coverage")
	}

	switch {
	case wordCount < 300:
		weak("Resume is too short - may lack detail", "Expand on your experience and achievements")
	case wordCount > 1000:
		weak("Resume is too long - ATS systems prefer concise resumes", "Condense your resume to 1-2 pages")
	default:
		strong("Appropriate resume length")
	}

	if !sec.contact {
		weak("Missing contact information", "Add email and phone number")
	} else {
		strong("Contact information present")
	}
	if !sec.experience {
		weak("Missing work experience section", "Add a detailed work experience section")
	} else {
		strong("Work experience section present")
	}
	if !sec.education {
		weak("Missing education section", "Add your educational background")
	} else {
		strong("Education section present")
	}
	if !sec.skills {
		weak("Missing skills section", "Add a dedicated skills section")
	} else {
		strong("Skills section present")
	}

	switch {
	case len(foundVerbs) == 0:
		weak("No action verbs found", "Use action verbs to describe achievements (e.g., achieved, improved, developed)")
	case len(foundVerbs) < 3:
		res.Suggestions = append(res.Suggestions, "Use more action verbs to strengthen your achievements")
	default:
		strong(fmt.Sprintf("Good use of action verbs (%d found)", len(foundVerbs)))
	}

	if !hasQuantifiable {
		weak("Missing quantifiable results",
			`Add numbers, percentages, and metrics to show impact (e.g., "increased revenue by 30%")`)
	} else {
		strong("Quantifiable results present")
	}

	if technicalSkills < 30 {
		res.Suggestions = append(res.Suggestions, "Add more technical skills relevant to your field")
	} else {
		strong(fmt.Sprintf("Strong technical skills coverage (%d skills found)", len(foundTech)))
	}

	for _, c := range companies {
		cs := percent(len(matching(lower, c.Keywords)), len(c.Keywords))
		res.CompanyComparisons[c.Key] = domain.CompanyComparison{Score: cs, Match: MatchLevelFor(cs)}
		if cs < 50 && c.Suggestion != "" {
			res.Suggestions = append(res.Suggestions, c.Suggestion)
		}
	}

	return res
}

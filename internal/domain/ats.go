package domain

import "time"

// MatchLevel buckets a company keyword score.
type MatchLevel string

const (
	MatchExcellent        MatchLevel = "Excellent Match"
	MatchGood             MatchLevel = "Good Match"
	MatchFair             MatchLevel = "Fair Match"
	MatchNeedsImprovement MatchLevel = "Needs Improvement"
)

// CompanyComparison is the keyword fit of a resume against one employer's profile.
type CompanyComparison struct {
	Score int        `json:"score" yaml:"score"`
	Match MatchLevel `json:"match" yaml:"match"`
}

// DetailedAnalysis breaks the overall ATS score into its inputs.
type DetailedAnalysis struct {
	KeywordDensity      float64 `json:"keywordDensity" yaml:"keyword_density"` // matches per 1000 words
	SectionCompleteness int     `json:"sectionCompleteness" yaml:"section_completeness"`
	ActionVerbUsage     int     `json:"actionVerbUsage" yaml:"action_verb_usage"`
	QuantifiableResults int     `json:"quantifiableResults" yaml:"quantifiable_results"`
	TechnicalSkills     int     `json:"technicalSkills" yaml:"technical_skills"`
}

// AtsResult is the outcome of scoring one resume.
type AtsResult struct {
	Score              int                          `json:"score" yaml:"score"`
	Suggestions        []string                     `json:"suggestions" yaml:"suggestions"`
	Strengths          []string                     `json:"strengths" yaml:"strengths"`
	Weaknesses         []string                     `json:"weaknesses" yaml:"weaknesses"`
	KeywordMatches     int                          `json:"keywordMatches" yaml:"keyword_matches"`
	TotalKeywords      int                          `json:"totalKeywords" yaml:"total_keywords"`
	FileSize           int64                        `json:"fileSize" yaml:"file_size"`
	WordCount          int                          `json:"wordCount" yaml:"word_count"`
	CompanyComparisons map[string]CompanyComparison `json:"companyComparisons" yaml:"company_comparisons"`
	DetailedAnalysis   DetailedAnalysis             `json:"detailedAnalysis" yaml:"detailed_analysis"`
}

// AtsCheck is a stored AtsResult.
type AtsCheck struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ResumeText string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	AtsResult
}

// UsageStatus reports how many checks a user has left in the current window.
type UsageStatus struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

// PremiumEnhancements are the extra recommendations offered for a stored check.
type PremiumEnhancements struct {
	MissingKeywords map[string][]string `json:"missingKeywords"`
	BulletRewrites  []BulletRewrite     `json:"bulletRewrites"`
	SectionOrder    []string            `json:"sectionOrder"`
	SectionAdvice   []string            `json:"sectionAdvice"`
	ProjectedScore  int                 `json:"projectedScore"`
}

// BulletRewrite flags a resume line and what it is missing.
type BulletRewrite struct {
	Original string   `json:"original"`
	Issues   []string `json:"issues"`
	Hint     string   `json:"hint"`
}

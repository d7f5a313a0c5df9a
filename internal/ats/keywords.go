package ats

// generalKeywords drive the 40% keyword component of the score.
var generalKeywords = []string{
	"skills", "experience", "education", "certification", "achievement",
	"leadership", "project", "team", "communication", "problem solving",
	"analytical", "technical", "professional", "bachelor", "master",
	"degree", "certified", "proficient", "expert", "knowledge",
	"responsibility", "accomplishment", "result", "improve", "increase",
	"develop", "manage", "implement", "create", "design", "build",
	"javascript", "python", "java", "react", "node", "sql", "database",
	"api", "rest", "git", "agile", "scrum", "devops", "cloud", "aws",
}

// CompanyProfile is the keyword list a target employer is scored against.
type CompanyProfile struct {
	Key        string
	Name       string
	Keywords   []string
	Suggestion string
}

// DefaultCompanies are the employers every resume is compared with.
var DefaultCompanies = []CompanyProfile{
	{
		Key:  "goldmanSachs",
		Name: "Goldman Sachs",
		Keywords: []string{
			"finance", "financial", "analytics", "risk", "trading", "investment",
			"quantitative", "modeling", "derivatives", "portfolio", "compliance",
			"regulatory", "excel", "vba", "sql", "python", "r", "statistics",
			"mba", "cfa", "leadership", "client", "stakeholder", "strategy",
		},
		Suggestion: "For Goldman Sachs: Add finance, analytics, risk management, and quantitative skills",
	},
	{
		Key:  "google",
		Name: "Google",
		Keywords: []string{
			"algorithm", "data structure", "system design", "distributed systems",
			"machine learning", "ai", "python", "java", "c++", "go", "javascript",
			"react", "angular", "kubernetes", "docker", "cloud", "gcp", "aws",
			"scalability", "performance", "optimization", "open source", "github",
			"leetcode", "competitive programming", "bachelor", "master", "phd",
		},
		Suggestion: "For Google: Emphasize algorithms, system design, distributed systems, and technical depth",
	},
}

var actionVerbs = []string{
	"achieved", "improved", "developed", "managed", "implemented", "created", "designed",
	"built", "led", "increased", "optimized", "delivered", "executed", "launched",
}

var techKeywords = []string{
	"javascript", "python", "java", "react", "node", "sql", "database", "api", "git",
	"docker", "kubernetes", "aws", "cloud",
}

package validation

import (
	"regexp"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+\s*=`)
	quoteCharsRe   = regexp.MustCompile(`['";\\]`)
	cityCharsRe    = regexp.MustCompile(`[^a-zA-Z\s\-'.,()]`)
	companyCharsRe = regexp.MustCompile(`[^a-zA-Z0-9\s\-'.,()&]`)
	httpSchemeRe   = regexp.MustCompile(`(?i)^https?://`)
	dangerousRe    = regexp.MustCompile(`[<>'"\\]`)
)

// SanitizeString strips markup, script handlers and quote characters and caps
// the result at 500 characters.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	s = htmlTagRe.ReplaceAllString(s, "")
	s = jsProtocolRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	s = quoteCharsRe.ReplaceAllString(s, "")
	return truncate(s, 500)
}

// SanitizeCity keeps letters, spaces and - ' . , ( ).
func SanitizeCity(s string) string {
	return truncate(cityCharsRe.ReplaceAllString(strings.TrimSpace(s), ""), 100)
}

// SanitizeCompany keeps letters, digits, spaces and - ' . , ( ) &.
func SanitizeCompany(s string) string {
	return truncate(companyCharsRe.ReplaceAllString(strings.TrimSpace(s), ""), 200)
}

// SanitizeURL returns "" unless s is an http(s) URL without markup characters.
func SanitizeURL(s string) string {
	u := strings.TrimSpace(s)
	if !httpSchemeRe.MatchString(u) || dangerousRe.MatchString(u) {
		return ""
	}
	return truncate(u, 2048)
}

// SanitizeSalaryInput cleans the free-text fields of in.
func SanitizeSalaryInput(in domain.SalaryInput) domain.SalaryInput {
	in.City = SanitizeCity(in.City)
	in.Company = SanitizeCompany(in.Company)
	in.Designation = SanitizeString(in.Designation)
	in.GithubProfile = SanitizeURL(in.GithubProfile)
	in.LinkedinProfile = SanitizeURL(in.LinkedinProfile)
	return in
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package billparser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// headerWindow is how many leading lines may hold the provider name
const headerWindow = 12

var (
	// administrative header lines never name the provider
	adminKeywords       = []string{"Patient", "Insurance", "Billing", "Statement", "Account", "Invoice", "Guarantor"}
	institutionKeywords = []string{"Center", "Clinic", "Hospital", "Medical", "Imaging", "Health", "Care"}

	serviceDateCues = []string{"service date", "date of service", "dos", "visit date"}

	dateRe    = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2})`)
	cptRe     = regexp.MustCompile(`(?i)CPT` + gap + `\d{4,5}`)
	cptCodeRe = regexp.MustCompile(`\b\d{5}\b`)
	centsRe   = regexp.MustCompile(`\d+\.\d{2}`)
)

// SpotProvider guesses the provider from the header window: the shortest line
// that names an institution and is not an administrative heading.
// Returns "" when no line qualifies.
func SpotProvider(lines []string) string {
	window := lines
	if len(window) > headerWindow {
		window = window[:headerWindow]
	}

	provider := ""
	for _, line := range window {
		if containsAny(line, adminKeywords) || !containsAny(line, institutionKeywords) {
			continue
		}
		// shorter lines are less likely to carry address or suite text
		if provider == "" || utf8.RuneCountInString(line) < utf8.RuneCountInString(provider) {
			provider = line
		}
	}
	return provider
}

// SpotServiceDate returns the first date on a line carrying a service-date cue,
// or else the first date anywhere in the document.
func SpotServiceDate(lines []string) string {
	fallback := ""
	for _, line := range lines {
		date := dateRe.FindString(line)
		if date == "" {
			continue
		}
		if containsAny(strings.ToLower(line), serviceDateCues) {
			return date
		}
		if fallback == "" {
			fallback = date
		}
	}
	return fallback
}

// SpotProcedure prefers an explicit "CPT nnnnn" token anywhere in the text and
// otherwise takes the first 5-digit code on a line that also prints an amount.
func SpotProcedure(text string, lines []string) string {
	if cpt := cptRe.FindString(text); cpt != "" {
		return cpt
	}

	for _, line := range lines {
		code := cptCodeRe.FindString(line)
		if code != "" && centsRe.MatchString(line) {
			return code
		}
	}
	return ""
}

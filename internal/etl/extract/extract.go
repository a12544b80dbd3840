// Package extract provides best-effort text extraction of site and flock
// attributes from scraped, multilingual free text. Extraction never fails:
// numeric extractors return nil when nothing matches and categorical
// extractors return a canonical default.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const acresToHectares = 0.404686

// AreaPattern pairs an area regex with a conversion factor to hectares.
// Patterns are evaluated in order; the first match wins.
type AreaPattern struct {
	Regex  *regexp.Regexp
	Factor float64
}

// Rule is a single keyword-to-label classification rule. Rules are evaluated
// in slice order, making the priority between overlapping keywords explicit.
type Rule struct {
	Keyword string
	Label   string
}

// Hectares scans text against the given ordered area patterns and returns the
// extracted value converted to hectares, or nil when no pattern matches.
func Hectares(text string, patterns []AreaPattern) *float64 {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	for _, p := range patterns {
		m := p.Regex.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(normalizeDecimal(m[1]), 64)
		if err != nil {
			continue
		}
		v *= p.Factor
		return &v
	}

	return nil
}

var capacityRegex = regexp.MustCompile(`(\d+[.,]?\d*)\s*[mM][wW]`)

// CapacityHectares estimates a site's grazeable area from a generation
// capacity figure in its title. A megawatt of panels covers roughly 1-2
// hectares; 1.5 is used as the midpoint estimate. Returns nil when the title
// carries no capacity figure.
func CapacityHectares(title string) *float64 {
	m := capacityRegex.FindStringSubmatch(title)
	if m == nil {
		return nil
	}
	mw, err := strconv.ParseFloat(normalizeDecimal(m[1]), 64)
	if err != nil {
		return nil
	}
	h := mw * 1.5
	return &h
}

var flockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s-]sheep`),
	regexp.MustCompile(`(\d+)[\s-]animals`),
	regexp.MustCompile(`(\d+)[\s-]ewes`),
	regexp.MustCompile(`flock of (\d+)`),
	regexp.MustCompile(`troupeau de (\d+)`),
	regexp.MustCompile(`(\d+) moutons`),
	regexp.MustCompile(`(\d+) schapen`),
	regexp.MustCompile(`(\d+) schafe`),
	regexp.MustCompile(`herde von (\d+)`),
}

// FlockSize extracts an animal head count from text, or nil when no
// count phrasing is found.
func FlockSize(text string) *int {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	for _, p := range flockPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return &n
		}
	}

	return nil
}

// DefaultVegetation is the sentinel vegetation label when text yields nothing.
const DefaultVegetation = "Mixed grass"

// Vegetation classifies ground cover from text using the given ordered rules.
func Vegetation(text string, rules []Rule) string {
	return classify(text, rules, DefaultVegetation)
}

// DefaultGrazing is the sentinel grazing label when text yields nothing.
const DefaultGrazing = "Mixed grazing"

var grazingRules = []Rule{
	{"rotational", "Rotational grazing"},
	{"rotation", "Rotational grazing"},
	{"seasonal", "Seasonal grazing"},
	{"continuous", "Continuous grazing"},
	{"mobile", "Mobile grazing"},
	{"nomadic", "Mobile grazing"},
	{"transhumance", "Transhumance"},
	{"organic", "Organic grazing"},
	{"bio", "Organic grazing"},
	{"ecological", "Ecological grazing"},
	{"conservation", "Conservation grazing"},
	{"nature", "Conservation grazing"},
	{"contract", "Contract grazing"},
	{"service", "Service grazing"},
}

// GrazingType classifies a farm's grazing practice from text.
func GrazingType(text string) string {
	return classify(text, grazingRules, DefaultGrazing)
}

// normalizeDecimal rewrites continental decimal commas so strconv accepts them.
func normalizeDecimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

func classify(text string, rules []Rule, fallback string) string {
	if text == "" {
		return fallback
	}

	lower := strings.ToLower(text)
	for _, r := range rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Label
		}
	}

	return fallback
}

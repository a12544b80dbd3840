// Package regions resolves administrative regions from scraped address and
// city strings. Each supported country carries its own keyword rules and
// postal-code scheme; resolution is a fixed-priority pipeline of keyword
// search, postal lookup, and country fallback.
package regions

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// KeywordRule maps an address substring to a region. Rules are evaluated in
// slice order; the first keyword found in the search text wins.
type KeywordRule struct {
	Keyword string
	Region  string
}

// PrefixRule maps a postal-code prefix to one or more candidate regions.
// Multiple candidates are disambiguated by re-running the keyword search
// restricted to the candidate set, falling back to the first candidate.
type PrefixRule struct {
	Prefix  string
	Regions []string
}

// RangeRule maps an inclusive numeric postal-code range to a region.
type RangeRule struct {
	Lo, Hi int
	Region string
}

// PostalScheme describes how a country's postal codes map to regions.
// Pattern must capture the postal code in its first group. Ranges are
// checked before Prefixes; either may be empty. PrefixLen limits how many
// leading characters of the extracted code participate in prefix matching.
type PostalScheme struct {
	Pattern   *regexp.Regexp
	PrefixLen int
	Prefixes  []PrefixRule
	Ranges    []RangeRule
}

// Table holds one country's resolution rules.
type Table struct {
	Keywords []KeywordRule
	Postal   *PostalScheme
	Fallback string
}

// Resolver dispatches region resolution to per-country tables keyed by
// ISO-style country code.
type Resolver struct {
	tables map[string]Table
}

// NewResolver creates a Resolver over the given tables. Pass DefaultTables
// for the built-in gazetteer.
func NewResolver(tables map[string]Table) *Resolver {
	return &Resolver{tables: tables}
}

// Resolve returns the administrative region for the given address and city,
// or the country's fallback (empty string for most countries) when nothing
// matches. Unknown country codes always resolve to empty string.
func (r *Resolver) Resolve(countryCode, address, city string) string {
	table, ok := r.tables[strings.ToUpper(countryCode)]
	if !ok {
		return ""
	}

	search := strings.ToLower(address) + " " + strings.ToLower(city)

	if region := matchKeywords(table.Keywords, search, nil); region != "" {
		return region
	}

	if table.Postal != nil && address != "" {
		if region := table.Postal.resolve(address, table.Keywords, search); region != "" {
			return region
		}
	}

	return table.Fallback
}

// Regions returns the distinct region names per country code, sorted
// alphabetically. Used to drive region filter dropdowns.
func (r *Resolver) Regions() map[string][]string {
	out := make(map[string][]string, len(r.tables))
	for code, table := range r.tables {
		var names []string
		add := func(region string) {
			if region != "" && !slices.Contains(names, region) {
				names = append(names, region)
			}
		}

		for _, rule := range table.Keywords {
			add(rule.Region)
		}
		if table.Postal != nil {
			for _, pr := range table.Postal.Prefixes {
				for _, region := range pr.Regions {
					add(region)
				}
			}
			for _, rr := range table.Postal.Ranges {
				add(rr.Region)
			}
		}
		add(table.Fallback)
		slices.Sort(names)
		out[code] = names
	}
	return out
}

func (s *PostalScheme) resolve(address string, keywords []KeywordRule, search string) string {
	m := s.Pattern.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	code := strings.ToUpper(m[1])

	if len(s.Ranges) > 0 {
		if n, err := strconv.Atoi(code); err == nil {
			for _, rr := range s.Ranges {
				if n >= rr.Lo && n <= rr.Hi {
					return rr.Region
				}
			}
		}
	}

	prefix := code
	if s.PrefixLen > 0 && len(prefix) > s.PrefixLen {
		prefix = prefix[:s.PrefixLen]
	}

	for _, pr := range s.Prefixes {
		if !strings.HasPrefix(prefix, pr.Prefix) {
			continue
		}
		if len(pr.Regions) == 1 {
			return pr.Regions[0]
		}
		if region := matchKeywords(keywords, search, pr.Regions); region != "" {
			return region
		}
		return pr.Regions[0]
	}

	return ""
}

// matchKeywords runs the ordered keyword scan. A non-nil restrict slice
// limits matches to the named candidate regions.
func matchKeywords(rules []KeywordRule, search string, restrict []string) string {
	for _, rule := range rules {
		if restrict != nil && !slices.Contains(restrict, rule.Region) {
			continue
		}
		if strings.Contains(search, rule.Keyword) {
			return rule.Region
		}
	}
	return ""
}

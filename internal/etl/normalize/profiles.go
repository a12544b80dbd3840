package normalize

import "github.com/ombaa/ombaa/internal/etl/extract"

// CountryOrder fixes the iteration order used when combining per-country
// datasets. Changing it changes the combined sequence, so it is part of the
// dataset contract.
var CountryOrder = []string{"NL", "UK", "FR", "DE", "BE"}

// SiteProfile bundles one country's solar park classification keywords,
// extraction rules, and defaults.
type SiteProfile struct {
	Country           string
	Code              string
	DomainKeywords    []string
	QualifierKeywords []string
	AreaPatterns      []extract.AreaPattern
	VegetationRules   []extract.Rule
	DefaultHectares   float64
}

// FarmProfile bundles one country's sheep farm classification keywords and
// defaults.
type FarmProfile struct {
	Country           string
	Code              string
	DomainKeywords    []string
	QualifierKeywords []string
	DefaultFlockSize  int
}

// SiteProfiles returns the built-in per-country solar park profiles keyed by
// country code.
func SiteProfiles() map[string]SiteProfile {
	return map[string]SiteProfile{
		"NL": {
			Country:           "Netherlands",
			Code:              "NL",
			DomainKeywords:    []string{"solar", "zon", "zonne", "pv", "photovoltaic", "fotovoltaïsche"},
			QualifierKeywords: []string{"park", "veld", "field", "farm", "centrale", "plant"},
			AreaPatterns:      extract.DutchAreaPatterns,
			VegetationRules:   extract.DutchVegetationRules,
			DefaultHectares:   15.0,
		},
		"UK": {
			Country:           "United Kingdom",
			Code:              "UK",
			DomainKeywords:    []string{"solar", "photovoltaic", "pv", "renewable", "energy"},
			QualifierKeywords: []string{"park", "farm", "field", "plant", "installation", "array"},
			AreaPatterns:      extract.UKAreaPatterns,
			VegetationRules:   extract.UKVegetationRules,
			DefaultHectares:   25.0,
		},
		"FR": {
			Country:           "France",
			Code:              "FR",
			DomainKeywords:    []string{"solar", "solaire", "photovoltaïque", "photovoltaique", "pv"},
			QualifierKeywords: []string{"parc", "centrale", "ferme", "installation", "plant", "farm", "flottant"},
			AreaPatterns:      extract.DutchAreaPatterns,
			VegetationRules:   extract.FrenchVegetationRules,
			DefaultHectares:   20.0,
		},
		"DE": {
			Country:           "Germany",
			Code:              "DE",
			DomainKeywords:    []string{"solar", "photovoltaik", "pv", "sonnen", "erneuerbare energie"},
			QualifierKeywords: []string{"park", "anlage", "farm", "feld", "kraftwerk"},
			AreaPatterns:      extract.GermanAreaPatterns,
			VegetationRules:   extract.GermanVegetationRules,
			DefaultHectares:   22.0,
		},
		"BE": {
			Country:           "Belgium",
			Code:              "BE",
			DomainKeywords:    []string{"solar", "solaire", "zonne", "photovoltaïque", "photovoltaique", "pv"},
			QualifierKeywords: []string{"park", "parc", "centrale", "ferme", "farm", "installation", "plant"},
			AreaPatterns:      extract.DutchAreaPatterns,
			VegetationRules:   extract.BelgianVegetationRules,
			DefaultHectares:   18.0,
		},
	}
}

// FarmProfiles returns the built-in per-country sheep farm profiles keyed by
// country code.
func FarmProfiles() map[string]FarmProfile {
	return map[string]FarmProfile{
		"NL": {
			Country:           "Netherlands",
			Code:              "NL",
			DomainKeywords:    []string{"schaap", "schapen", "sheep", "herder", "schaapskudde"},
			QualifierKeywords: []string{"boerderij", "farm", "bedrijf", "kudde", "houderij"},
			DefaultFlockSize:  150,
		},
		"UK": {
			Country:           "United Kingdom",
			Code:              "UK",
			DomainKeywords:    []string{"sheep", "shepherd", "lamb", "ewe", "wool", "flock"},
			QualifierKeywords: []string{"farm", "grazing", "livestock", "holding", "croft"},
			DefaultFlockSize:  350,
		},
		"FR": {
			Country:           "France",
			Code:              "FR",
			DomainKeywords:    []string{"mouton", "brebis", "ovin", "berger", "bergerie"},
			QualifierKeywords: []string{"ferme", "élevage", "elevage", "exploitation", "troupeau"},
			DefaultFlockSize:  250,
		},
		"DE": {
			Country:           "Germany",
			Code:              "DE",
			DomainKeywords:    []string{"schaf", "schafe", "schäfer", "schafer", "lamm"},
			QualifierKeywords: []string{"hof", "betrieb", "farm", "herde", "zucht"},
			DefaultFlockSize:  300,
		},
		"BE": {
			Country:           "Belgium",
			Code:              "BE",
			DomainKeywords:    []string{"schaap", "schapen", "mouton", "brebis", "sheep", "berger", "herder"},
			QualifierKeywords: []string{"boerderij", "ferme", "farm", "bedrijf", "élevage", "elevage", "kudde"},
			DefaultFlockSize:  120,
		},
	}
}

package extract

import "regexp"

func area(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

// DutchAreaPatterns match hectare phrasings in Dutch-language scrapes.
// Also used for Belgian and French text, which share the hectare spellings.
var DutchAreaPatterns = []AreaPattern{
	{area(`(\d+[.,]?\d*)\s*ha\b`), 1},
	{area(`(\d+[.,]?\d*)\s*hectare[s]?\b`), 1},
	{area(`(\d+[.,]?\d*)\s*hectaren\b`), 1},
}

// UKAreaPatterns additionally recognize acres and convert them to hectares.
var UKAreaPatterns = []AreaPattern{
	{area(`(\d+[.,]?\d*)\s*ha\b`), 1},
	{area(`(\d+[.,]?\d*)\s*hectare[s]?\b`), 1},
	{area(`(\d+[.,]?\d*)\s*acre[s]?\b`), acresToHectares},
}

// GermanAreaPatterns recognize the Hektar spellings.
var GermanAreaPatterns = []AreaPattern{
	{area(`(\d+[.,]?\d*)\s*ha\b`), 1},
	{area(`(\d+[.,]?\d*)\s*hektar[en]?\b`), 1},
	{area(`(\d+[.,]?\d*)\s*hectare[s]?\b`), 1},
}

// DutchVegetationRules classify ground cover from Dutch and English keywords.
var DutchVegetationRules = []Rule{
	{"grass", "Grass"},
	{"gras", "Grass"},
	{"meadow", "Meadow"},
	{"weide", "Meadow"},
	{"wild", "Wild flowers"},
	{"bloem", "Wild flowers"},
	{"flower", "Wild flowers"},
	{"herb", "Herbs and wildflowers"},
	{"kruid", "Herbs and wildflowers"},
}

// UKVegetationRules classify ground cover from English keywords.
var UKVegetationRules = []Rule{
	{"grass", "Grass"},
	{"meadow", "Meadow"},
	{"pasture", "Pasture"},
	{"sheep", "Sheep grazing"},
	{"wild flower", "Wild flowers"},
	{"wildflower", "Wild flowers"},
	{"herb", "Herbs and wildflowers"},
	{"biodiversity", "Biodiversity mix"},
}

// FrenchVegetationRules classify ground cover from French keywords.
var FrenchVegetationRules = []Rule{
	{"grass", "Grass"},
	{"herbe", "Grass"},
	{"prairie", "Meadow"},
	{"pâturage", "Pasture"},
	{"fleur", "Wild flowers"},
	{"sauvage", "Wild flowers"},
	{"herb", "Herbs and wildflowers"},
	{"végétation", "Mixed vegetation"},
}

// GermanVegetationRules classify ground cover from German keywords.
var GermanVegetationRules = []Rule{
	{"gras", "Grass"},
	{"wiese", "Meadow"},
	{"weide", "Pasture"},
	{"schaf", "Sheep grazing"},
	{"blumen", "Wild flowers"},
	{"wildblumen", "Wild flowers"},
	{"kräuter", "Herbs and wildflowers"},
	{"biodiversität", "Biodiversity mix"},
}

// BelgianVegetationRules mix Dutch and French keywords for bilingual scrapes.
var BelgianVegetationRules = []Rule{
	{"grass", "Grass"},
	{"gras", "Grass"},
	{"herbe", "Grass"},
	{"prairie", "Meadow"},
	{"weide", "Meadow"},
	{"pâturage", "Pasture"},
	{"fleur", "Wild flowers"},
	{"bloem", "Wild flowers"},
	{"sauvage", "Wild flowers"},
	{"herb", "Herbs and wildflowers"},
	{"kruid", "Herbs and wildflowers"},
	{"végétation", "Mixed vegetation"},
}

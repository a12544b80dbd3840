package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// breeds lists literal breed names in match priority order: English, French,
// German, Dutch, and Belgian breeds, then generic breed words.
var breeds = []string{
	"suffolk", "texel", "hampshire", "dorset", "romney", "lincoln", "cotswold",
	"leicester", "southdown", "shropshire", "oxford", "cheviot", "jacob",
	"wensleydale", "devon", "exmoor", "dartmoor", "herdwick", "swaledale",
	"lacaune", "mérinos", "préalpes", "charollais", "île-de-france", "berrichon",
	"romanov", "rava", "caussenard", "bizet", "mourerous", "tarasconnais",
	"merino", "schwarzkopf", "rhönschaf", "skudde", "rauhwolliges", "pommersches",
	"ostfriesisches", "leineschaf", "bentheimer", "coburger", "waldschaf",
	"zwartbles", "drenthe", "veluwe", "kempisch", "fries", "schoonebeeker",
	"ardennais", "entre-sambre-et-meuse", "lakens", "vlaams", "houtlandschaap",
	"breed", "race", "ras", "rasse",
}

var breedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`breed[s]?:?\s+([a-z\s]+)`),
	regexp.MustCompile(`race[s]?:?\s+([a-z\s]+)`),
	regexp.MustCompile(`ras:?\s+([a-z\s]+)`),
	regexp.MustCompile(`rasse[n]?:?\s+([a-z\s]+)`),
}

const maxBreedLen = 30

// Breed extracts a sheep breed from text. Literal breed names win; failing
// that, a "breed: X" style capture is used, truncated to 30 characters.
// Returns nil when neither yields anything.
func Breed(text string) *string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	for _, b := range breeds {
		if strings.Contains(lower, b) {
			t := titleCase(b)
			return &t
		}
	}

	for _, p := range breedPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			captured := strings.TrimSpace(m[1])
			if len(captured) > maxBreedLen {
				captured = captured[:maxBreedLen]
			}
			t := titleCase(captured)
			return &t
		}
	}

	return nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

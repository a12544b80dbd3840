package extract_test

import (
	"math"
	"testing"

	"github.com/ombaa/ombaa/internal/etl/extract"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestHectares(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		patterns []extract.AreaPattern
		want     *float64
	}{
		{"plain ha", "the site covers 5.5 ha of land", extract.DutchAreaPatterns, ptr(5.5)},
		{"hectares spelled out", "spanning 12 hectares near the river", extract.DutchAreaPatterns, ptr(12)},
		{"dutch plural", "een veld van 8 hectaren", extract.DutchAreaPatterns, ptr(8)},
		{"decimal comma", "ongeveer 3,5 ha groot", extract.DutchAreaPatterns, ptr(3.5)},
		{"acres converted", "a 12 acres meadow", extract.UKAreaPatterns, ptr(12 * 0.404686)},
		{"hektar", "eine Anlage mit 20 Hektar", extract.GermanAreaPatterns, ptr(20)},
		{"no figure", "a lovely solar installation", extract.DutchAreaPatterns, nil},
		{"empty text", "", extract.DutchAreaPatterns, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Hectares(tt.text, tt.patterns)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Hectares(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Hectares(%q) = nil, want %v", tt.text, *tt.want)
			}
			if !approx(*got, *tt.want) {
				t.Errorf("Hectares(%q) = %v, want %v", tt.text, *got, *tt.want)
			}
		})
	}
}

func TestCapacityHectares(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  *float64
	}{
		{"integer capacity", "zonnepark rilland 40 mw", ptr(60)},
		{"decimal capacity", "solar farm 2.5 mw", ptr(3.75)},
		{"decimal comma", "solarpark 7,5 mw", ptr(11.25)},
		{"no capacity", "sunshine solar park", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.CapacityHectares(tt.title)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("CapacityHectares(%q) = %v, want nil", tt.title, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("CapacityHectares(%q) = nil, want %v", tt.title, *tt.want)
			}
			if !approx(*got, *tt.want) {
				t.Errorf("CapacityHectares(%q) = %v, want %v", tt.title, *got, *tt.want)
			}
		})
	}
}

func TestFlockSize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"sheep count", "We keep 250 sheep on rotating pasture", iptr(250)},
		{"flock of", "a flock of 400 grazing year round", iptr(400)},
		{"french", "un troupeau de 180 animaux", iptr(180)},
		{"dutch", "wij hebben 320 schapen", iptr(320)},
		{"german herd", "eine Herde von 90 Tieren", iptr(90)},
		{"no count", "family farm with friendly animals", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.FlockSize(tt.text)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("FlockSize(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("FlockSize(%q) = nil, want %v", tt.text, *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("FlockSize(%q) = %v, want %v", tt.text, *got, *tt.want)
			}
		})
	}
}

func TestVegetation(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		rules []extract.Rule
		want  string
	}{
		{"wildflowers", "home of wildflowers and bees", extract.DutchVegetationRules, "Wild flowers"},
		{"grass before meadow", "grass meadow site", extract.DutchVegetationRules, "Grass"},
		{"uk pasture", "restored pasture land", extract.UKVegetationRules, "Pasture"},
		{"french prairie", "une belle prairie fleurie", extract.FrenchVegetationRules, "Meadow"},
		{"default", "rows of panels", extract.DutchVegetationRules, extract.DefaultVegetation},
		{"empty", "", extract.DutchVegetationRules, extract.DefaultVegetation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.Vegetation(tt.text, tt.rules); got != tt.want {
				t.Errorf("Vegetation(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestGrazingType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"rotational", "we practice rotational grazing", "Rotational grazing"},
		{"conservation", "nature reserve maintenance", "Conservation grazing"},
		{"organic bio", "bio certified since 2015", "Organic grazing"},
		{"default", "sheep for hire", extract.DefaultGrazing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.GrazingType(tt.text); got != tt.want {
				t.Errorf("GrazingType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestBreed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{"known breed", "we raise Texel sheep on coastal pasture", ptrs("Texel")},
		{"dutch breed", "onze kudde zwartbles schapen", ptrs("Zwartbles")},
		{"no breed", "a mixed flock of happy animals", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Breed(tt.text)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Breed(%q) = %q, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Breed(%q) = nil, want %q", tt.text, *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("Breed(%q) = %q, want %q", tt.text, *got, *tt.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
func iptr(n int) *int        { return &n }
func ptrs(s string) *string  { return &s }

// Package normalize converts raw scraped place records into the directory's
// normalized dataset shapes. Records are filtered by keyword classification,
// enriched through the extract and regions packages, and stamped with a
// deterministic id so downstream match records survive dataset re-ordering.
package normalize

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/etl/extract"
	"github.com/ombaa/ombaa/internal/etl/regions"
)

// recordNamespace seeds the deterministic record ids. Changing it invalidates
// every published dataset.
var recordNamespace = uuid.MustParse("9f2c1b44-52a7-4c84-8d8e-3f6b27a90b15")

// Coordinates is a nullable lat/lng pair. Both fields are nil when the
// scrape carried no location.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// RawReview is a single scraped review.
type RawReview struct {
	Text string `json:"text"`
}

type rawLocation struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// RawPlace is one scraped place record as produced by the crawler. Inputs
// are never mutated.
type RawPlace struct {
	Title       string       `json:"title"`
	Categories  []string     `json:"categories"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Phone       string       `json:"phone"`
	Website     string       `json:"website"`
	Description string       `json:"description"`
	Reviews     []RawReview  `json:"reviews"`
	Location    *rawLocation `json:"location"`
}

// Site is a normalized solar park record.
type Site struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Location       string      `json:"location"`
	Country        string      `json:"country"`
	Region         string      `json:"region"`
	TotalHectares  float64     `json:"total_hectares"`
	VegetationType string      `json:"vegetation_type"`
	ContactEmail   string      `json:"contact_email"`
	ContactPhone   string      `json:"contact_phone"`
	Website        string      `json:"website"`
	Coordinates    Coordinates `json:"coordinates"`
}

// Farm is a normalized sheep farm record.
type Farm struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Country      string      `json:"country"`
	Region       string      `json:"region"`
	FlockSize    int         `json:"flock_size"`
	Breed        string      `json:"breed"`
	GrazingType  string      `json:"grazing_type"`
	ContactEmail string      `json:"contact_email"`
	ContactPhone string      `json:"contact_phone"`
	Website      string      `json:"website"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Classified reports whether a record belongs to the dataset. A record is
// accepted when its title contains both a domain keyword and a qualifier
// keyword, or when any category contains a domain keyword on its own.
func Classified(title string, categories []string, domain, qualifier []string) bool {
	lower := strings.ToLower(title)

	for _, d := range domain {
		if !strings.Contains(lower, d) {
			continue
		}
		for _, q := range qualifier {
			if strings.Contains(lower, q) {
				return true
			}
		}
	}

	for _, cat := range categories {
		lowerCat := strings.ToLower(cat)
		for _, d := range domain {
			if strings.Contains(lowerCat, d) {
				return true
			}
		}
	}

	return false
}

// Sites normalizes raw records into solar park entries using the country
// profile. Records failing classification are silently dropped.
func Sites(records []RawPlace, p SiteProfile, resolver *regions.Resolver) []Site {
	sites := make([]Site, 0, len(records))

	for _, rec := range records {
		if !Classified(rec.Title, rec.Categories, p.DomainKeywords, p.QualifierKeywords) {
			continue
		}

		description := longestReview(rec.Reviews)

		hectares := extract.Hectares(description, p.AreaPatterns)
		if hectares == nil {
			hectares = extract.Hectares(rec.Description, p.AreaPatterns)
		}
		if hectares == nil {
			hectares = extract.CapacityHectares(strings.ToLower(rec.Title))
		}
		area := p.DefaultHectares
		if hectares != nil {
			area = *hectares
		}

		sites = append(sites, Site{
			ID:             RecordID("solar-park", rec.Title, coordinates(rec.Location)),
			Name:           rec.Title,
			Location:       rec.Address,
			Country:        p.Country,
			Region:         resolver.Resolve(p.Code, rec.Address, rec.City),
			TotalHectares:  area,
			VegetationType: extract.Vegetation(description, p.VegetationRules),
			ContactPhone:   rec.Phone,
			Website:        rec.Website,
			Coordinates:    coordinates(rec.Location),
		})
	}

	return sites
}

// Farms normalizes raw records into sheep farm entries using the country
// profile.
func Farms(records []RawPlace, p FarmProfile, resolver *regions.Resolver) []Farm {
	farms := make([]Farm, 0, len(records))

	for _, rec := range records {
		if !Classified(rec.Title, rec.Categories, p.DomainKeywords, p.QualifierKeywords) {
			continue
		}

		description := longestReview(rec.Reviews)

		size := extract.FlockSize(description)
		if size == nil {
			size = extract.FlockSize(rec.Description)
		}
		flock := p.DefaultFlockSize
		if size != nil {
			flock = *size
		}

		breed := extract.Breed(description)
		if breed == nil {
			breed = extract.Breed(rec.Description)
		}
		breedName := "Mixed breed"
		if breed != nil {
			breedName = *breed
		}

		farms = append(farms, Farm{
			ID:           RecordID("sheep-farm", rec.Title, coordinates(rec.Location)),
			Name:         rec.Title,
			Location:     rec.Address,
			Country:      p.Country,
			Region:       resolver.Resolve(p.Code, rec.Address, rec.City),
			FlockSize:    flock,
			Breed:        breedName,
			GrazingType:  extract.GrazingType(description),
			ContactPhone: rec.Phone,
			Website:      rec.Website,
			Coordinates:  coordinates(rec.Location),
		})
	}

	return farms
}

// RecordID derives the stable identifier for a normalized record from its
// kind, name, and coordinates. Identical inputs always produce the same id.
func RecordID(kind, name string, coords Coordinates) string {
	key := kind + "|" + name
	if coords.Latitude != nil && coords.Longitude != nil {
		key += "|" + formatCoord(*coords.Latitude) + "|" + formatCoord(*coords.Longitude)
	}
	return uuid.NewSHA1(recordNamespace, []byte(key)).String()
}

// longestReview picks the longest review text as the record's working
// description.
func longestReview(reviews []RawReview) string {
	var longest string
	for _, r := range reviews {
		if len(r.Text) > len(longest) {
			longest = r.Text
		}
	}
	return longest
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func coordinates(loc *rawLocation) Coordinates {
	if loc == nil {
		return Coordinates{}
	}
	return Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}
}

package sites

import "github.com/ombaa/ombaa/pkg/repository"

const siteColumns = "id, profile_id, name, location, total_hectares, vegetation_type, latitude, longitude, created_at"

const analyticsColumns = "id, site_id, date, ndvi_score, status, notes, created_at"

func scanSite(s repository.Scanner) (SolarSite, error) {
	var site SolarSite
	err := s.Scan(
		&site.ID,
		&site.ProfileID,
		&site.Name,
		&site.Location,
		&site.TotalHectares,
		&site.VegetationType,
		&site.Latitude,
		&site.Longitude,
		&site.CreatedAt,
	)
	return site, err
}

func scanAnalytics(s repository.Scanner) (SiteAnalytics, error) {
	var a SiteAnalytics
	err := s.Scan(
		&a.ID,
		&a.SiteID,
		&a.Date,
		&a.NDVIScore,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
	)
	return a, err
}

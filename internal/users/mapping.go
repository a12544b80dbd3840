package users

import "github.com/ombaa/ombaa/pkg/repository"

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.passwordHash,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

func scanSolarFarmProfile(s repository.Scanner) (SolarFarmProfile, error) {
	var p SolarFarmProfile
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.CompanyName,
		&p.ContactPerson,
		&p.Phone,
		&p.Address,
		&p.CreatedAt,
	)
	return p, err
}

func scanShepherdProfile(s repository.Scanner) (ShepherdProfile, error) {
	var p ShepherdProfile
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Phone,
		&p.Address,
		&p.ExperienceYears,
		&p.IsVerified,
		&p.Latitude,
		&p.Longitude,
		&p.CreatedAt,
	)
	return p, err
}

package workplace

func strPtr(s string) *string { return &s }

// DefaultLocations is the built-in fallback list the directory serves until
// the first successful backend fetch.
func DefaultLocations() []WorkplaceLocation {
	return []WorkplaceLocation{
		{
			ID:           "wpl-main-depot",
			Name:         "Main Depot",
			Latitude:     14.2753,
			Longitude:    121.1298,
			RadiusMeters: 100,
			Address:      strPtr("Brgy. Mayapa, Calamba, Laguna"),
			IsActive:     true,
		},
		{
			ID:           "wpl-north-yard",
			Name:         "North Yard",
			Latitude:     14.2871,
			Longitude:    121.1245,
			RadiusMeters: 150,
			Address:      strPtr("Brgy. Real, Calamba, Laguna"),
			IsActive:     true,
		},
		{
			ID:           "wpl-old-annex",
			Name:         "Old Annex",
			Latitude:     14.2698,
			Longitude:    121.1412,
			RadiusMeters: 80,
			IsActive:     false,
		},
	}
}

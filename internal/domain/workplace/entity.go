package workplace

// WorkplaceLocation is a known work site: a center point and the radius in
// which attendance actions are valid. Immutable once fetched.
type WorkplaceLocation struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Address      *string
	IsActive     bool
}

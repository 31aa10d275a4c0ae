package rest

import (
	"context"
	"fmt"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
)

type WorkplaceRepository struct {
	client *api.Client
}

func NewWorkplaceRepository(client *api.Client) *WorkplaceRepository {
	return &WorkplaceRepository{client: client}
}

// workplaceDTO is the wire shape of a workplace location. Parsed and
// validated once here; everything inward works with the domain entity.
type workplaceDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	Address      *string `json:"address"`
	IsActive     bool    `json:"is_active"`
}

func (d workplaceDTO) toDomain() (workplace.WorkplaceLocation, error) {
	if d.ID == "" {
		return workplace.WorkplaceLocation{}, fmt.Errorf("workplace location missing id")
	}
	if d.Latitude < -90 || d.Latitude > 90 || d.Longitude < -180 || d.Longitude > 180 {
		return workplace.WorkplaceLocation{}, fmt.Errorf("workplace location %s has invalid coordinates", d.ID)
	}
	if d.RadiusMeters <= 0 {
		return workplace.WorkplaceLocation{}, fmt.Errorf("workplace location %s has non-positive radius", d.ID)
	}
	return workplace.WorkplaceLocation{
		ID:           d.ID,
		Name:         d.Name,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		RadiusMeters: d.RadiusMeters,
		Address:      d.Address,
		IsActive:     d.IsActive,
	}, nil
}

// FetchAll implements workplace.Repository.
func (r *WorkplaceRepository) FetchAll(ctx context.Context) ([]workplace.WorkplaceLocation, error) {
	var dtos []workplaceDTO
	if err := r.client.Get(ctx, "/api/v1/workplace-locations", &dtos); err != nil {
		return nil, fmt.Errorf("failed to fetch workplace locations: %w", err)
	}

	locations := make([]workplace.WorkplaceLocation, 0, len(dtos))
	for _, dto := range dtos {
		loc, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

package workplace

import "context"

// Repository fetches the full workplace list from the backend.
type Repository interface {
	FetchAll(ctx context.Context) ([]WorkplaceLocation, error)
}

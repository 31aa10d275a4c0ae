package workplace

import (
	"context"
	"log/slog"
	"sync"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
)

// DirectoryService holds the workplace list in memory, seeded with the
// built-in defaults and replaced wholesale on each successful refresh.
type DirectoryService struct {
	repo workplace.Repository

	mu        sync.RWMutex
	locations []workplace.WorkplaceLocation
}

func NewDirectoryService(repo workplace.Repository) *DirectoryService {
	return &DirectoryService{
		repo:      repo,
		locations: workplace.DefaultLocations(),
	}
}

// Refresh implements workplace.Directory. A failed fetch keeps the current
// list; the caller always gets a usable list back.
func (s *DirectoryService) Refresh(ctx context.Context) []workplace.WorkplaceLocation {
	fetched, err := s.repo.FetchAll(ctx)
	if err != nil {
		slog.Warn("Failed to refresh workplace locations, serving current list", "error", err)
		return s.All()
	}

	s.mu.Lock()
	s.locations = fetched
	s.mu.Unlock()

	return s.All()
}

// All implements workplace.Directory.
func (s *DirectoryService) All() []workplace.WorkplaceLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]workplace.WorkplaceLocation, len(s.locations))
	copy(out, s.locations)
	return out
}

// Active implements workplace.Directory.
func (s *DirectoryService) Active() []workplace.WorkplaceLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []workplace.WorkplaceLocation
	for _, loc := range s.locations {
		if loc.IsActive {
			out = append(out, loc)
		}
	}
	return out
}

// Find implements workplace.Directory.
func (s *DirectoryService) Find(id string) (workplace.WorkplaceLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, loc := range s.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return workplace.WorkplaceLocation{}, workplace.ErrLocationNotFound
}

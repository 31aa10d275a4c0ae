package assignment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
)

// DefaultCacheTTL is how long a fetched assignment is served without a new
// backend call.
const DefaultCacheTTL = 5 * time.Minute

// ResolverService caches the employee's own assignment in front of the
// backend. The fast path (fresh cache) takes no network call; on backend
// failure it serves the last-known-good value rather than nothing.
//
// Concurrent forced refreshes may both hit the backend; the fetch is
// idempotent and the results converge, so no in-flight de-duplication is
// done.
type ResolverService struct {
	repo assignment.Repository
	ttl  time.Duration
	now  func() time.Time

	mu         sync.Mutex
	cached     *assignment.EmployeeAssignment
	fetchedAt  time.Time
	hasFetched bool
}

func NewResolverService(repo assignment.Repository, ttl time.Duration) *ResolverService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResolverService{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Mine implements assignment.Resolver.
func (s *ResolverService) Mine(ctx context.Context, forceRefresh bool) (*assignment.EmployeeAssignment, error) {
	s.mu.Lock()
	if !forceRefresh && s.hasFetched && s.now().Sub(s.fetchedAt) < s.ttl {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	fresh, err := s.repo.FetchMine(ctx)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.hasFetched {
			slog.Warn("Assignment fetch failed, serving stale cache", "error", err)
			return s.cached, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.cached = fresh
	s.fetchedAt = s.now()
	s.hasFetched = true
	s.mu.Unlock()

	return fresh, nil
}

// ByEmployee implements assignment.Resolver. Never cached.
func (s *ResolverService) ByEmployee(ctx context.Context, employeeID string) (*assignment.EmployeeAssignment, error) {
	return s.repo.FetchByEmployee(ctx, employeeID)
}

// HasAssignment implements assignment.Resolver.
func (s *ResolverService) HasAssignment(ctx context.Context) bool {
	a, err := s.Mine(ctx, false)
	return err == nil && a != nil
}

// ClearCache implements assignment.Resolver.
func (s *ResolverService) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.hasFetched = false
}

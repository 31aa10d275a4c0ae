package workplace

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkplaceRepo struct {
	locations []workplace.WorkplaceLocation
	err       error
}

func (f *fakeWorkplaceRepo) FetchAll(ctx context.Context) ([]workplace.WorkplaceLocation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func TestDirectoryStartsWithDefaults(t *testing.T) {
	dir := NewDirectoryService(&fakeWorkplaceRepo{})

	all := dir.All()
	assert.Equal(t, workplace.DefaultLocations(), all)

	for _, loc := range dir.Active() {
		assert.True(t, loc.IsActive)
	}
	assert.Less(t, len(dir.Active()), len(all))
}

func TestRefreshReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	fetched := []workplace.WorkplaceLocation{
		{ID: "wpl-1", Name: "Site A", Latitude: 1, Longitude: 2, RadiusMeters: 50, IsActive: true},
	}
	dir := NewDirectoryService(&fakeWorkplaceRepo{locations: fetched})

	got := dir.Refresh(ctx)
	assert.Equal(t, fetched, got)
	assert.Equal(t, fetched, dir.All())
}

func TestRefreshKeepsCurrentListOnFailure(t *testing.T) {
	ctx := context.Background()
	repo := &fakeWorkplaceRepo{err: errors.New("backend down")}
	dir := NewDirectoryService(repo)

	got := dir.Refresh(ctx)
	assert.Equal(t, workplace.DefaultLocations(), got)

	// A later successful refresh, then a failure: the fetched list stays.
	repo.err = nil
	repo.locations = []workplace.WorkplaceLocation{
		{ID: "wpl-1", Name: "Site A", Latitude: 1, Longitude: 2, RadiusMeters: 50, IsActive: true},
	}
	dir.Refresh(ctx)

	repo.err = errors.New("backend down again")
	got = dir.Refresh(ctx)
	assert.Equal(t, repo.locations, got)
}

func TestFind(t *testing.T) {
	dir := NewDirectoryService(&fakeWorkplaceRepo{})

	loc, err := dir.Find("wpl-main-depot")
	require.NoError(t, err)
	assert.Equal(t, "Main Depot", loc.Name)

	_, err = dir.Find("wpl-unknown")
	assert.ErrorIs(t, err, workplace.ErrLocationNotFound)
}

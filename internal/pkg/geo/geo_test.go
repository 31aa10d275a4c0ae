package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	assert.Zero(t, Distance(14.2753, 121.1298, 14.2753, 121.1298))
}

func TestDistanceSymmetry(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{14.2753, 121.1298, 14.2760, 121.1310},
		{-6.2088, 106.8456, -6.1751, 106.8650},
		{0, 0, 0.001, 0.001},
		{51.5007, -0.1246, 48.8584, 2.2945},
	}
	for _, c := range cases {
		ab := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
		ba := Distance(c.lat2, c.lon2, c.lat1, c.lon1)
		assert.InDelta(t, ab, ba, 1e-9)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// One degree of latitude is roughly 111.19 km.
	assert.InDelta(t, 111195, Distance(0, 0, 1, 0), 100)

	// Roughly 150 m north of the reference workplace.
	assert.InDelta(t, 150, Distance(14.2753, 121.1298, 14.2753+150.0/111195.0, 121.1298), 1)
}

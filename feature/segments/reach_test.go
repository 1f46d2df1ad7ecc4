package segments

import (
	"testing"

	"commerce-linker/core/rng"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReach(t *testing.T) {
	tests := []struct {
		name string
		req  CreateRequest
		want int
	}{
		{name: "no criteria", req: CreateRequest{SegmentName: "all"}, want: 1_000_000},
		{
			name: "age and interest",
			req:  CreateRequest{AgeBands: []string{"25-34"}, Interests: []string{"Sports"}},
			want: 625_000,
		},
		{
			name: "two of everything",
			req: CreateRequest{
				AgeBands:     []string{"18-24", "25-34"},
				Demographics: []string{"Female", "Parents"},
				Locations:    []string{"Sydney", "Tokyo"},
				Interests:    []string{"Sports", "Travel"},
			},
			want: 333_333,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateReach(tt.req), 1)
		})
	}
}

func TestEstimateReach_ShrinksWithCriteria(t *testing.T) {
	broad := EstimateReach(CreateRequest{Locations: []string{"Tokyo"}})
	narrow := EstimateReach(CreateRequest{Locations: []string{"Tokyo"}, Interests: []string{"Gaming"}})
	assert.Less(t, narrow, broad)
}

func TestSyntheticImpressions(t *testing.T) {
	out := SyntheticImpressions(rng.New(5), historyDays, baseImpressions)
	assert.Len(t, out, historyDays)

	for i, n := range out {
		weekend := 1.0
		if i%7 >= 5 {
			weekend = 0.7
		}
		trend := 1 + float64(i)/float64(historyDays)*0.2
		lo := float64(baseImpressions) * weekend * trend * 0.9
		hi := float64(baseImpressions) * weekend * trend * 1.1
		assert.GreaterOrEqual(t, float64(n), lo-1, "day %d", i)
		assert.LessOrEqual(t, float64(n), hi, "day %d", i)
	}

	assert.Equal(t, out, SyntheticImpressions(rng.New(5), historyDays, baseImpressions))
}

func TestDeviceDistribution(t *testing.T) {
	total := 0.0
	for _, d := range DeviceDistribution() {
		total += d.Percentage
	}
	assert.Equal(t, 100.0, total)
	assert.Equal(t, "Mobile", DeviceDistribution()[0].Device)
}

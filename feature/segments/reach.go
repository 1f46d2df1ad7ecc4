package segments

import "commerce-linker/core/rng"

const (
	baseReach       = 1_000_000
	baseImpressions = 5000
	historyDays     = 30
)

// EstimateReach shrinks the base audience as criteria get more specific.
func EstimateReach(req CreateRequest) int {
	specificity := 0.3*float64(len(req.AgeBands)) +
		0.2*float64(len(req.Demographics)) +
		0.2*float64(len(req.Locations)) +
		0.3*float64(len(req.Interests))
	return int(baseReach / (1 + specificity))
}

// SyntheticImpressions draws days of impressions around base with a weekly
// dip, a 20% growth trend over the period and +/-10% noise.
func SyntheticImpressions(src *rng.Source, days, base int) []int {
	out := make([]int, days)
	for i := range out {
		weekend := 1.0
		if i%7 >= 5 {
			weekend = 0.7
		}
		trend := 1 + float64(i)/float64(days)*0.2
		variance := src.Uniform(0.9, 1.1)
		out[i] = int(float64(base) * weekend * trend * variance)
	}
	return out
}

// DeviceDistribution is the fixed device mix of segment impressions.
func DeviceDistribution() []DeviceShare {
	return []DeviceShare{
		{Device: "Mobile", Percentage: 55},
		{Device: "Desktop", Percentage: 30},
		{Device: "Tablet", Percentage: 10},
		{Device: "Smart TV", Percentage: 5},
	}
}

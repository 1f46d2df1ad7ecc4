package reconcile

import "commerce-linker/core/utils"

// Summarize computes the aggregate counts and rates of a finished run.
// Rates are percentages and are 0 when their denominator is 0.
func Summarize(in Input, state *State) *Result {
	res := &Result{
		ExactEmailMatches:           state.Count(MatchExactEmail),
		GeographicBehavioralMatches: state.Count(MatchGeographicBehavioral),
		TimingPatternMatches:        state.Count(MatchTimingPattern),
		TotalUniqueMatches:          state.Len(),
		SessionCount:                len(in.Sessions),
		AccountCount:                len(in.Accounts),
		MatchedSessionIDs:           append([]string{}, state.MatchedSessionIDs()...),
		Matches:                     append([]Match{}, state.Matches()...),
	}

	for _, s := range in.Sessions {
		if s.Converted {
			res.ConvertedSessions++
			res.TotalConvertedRevenue += s.Revenue
		}
	}
	for _, m := range res.Matches {
		if m.Converted {
			res.MatchedRevenue += m.Revenue
		}
	}
	res.TotalConvertedRevenue = utils.Round2(res.TotalConvertedRevenue)
	res.MatchedRevenue = utils.Round2(res.MatchedRevenue)

	total := float64(res.TotalUniqueMatches)
	res.MatchRatePercent = utils.SafeDiv(total, float64(res.SessionCount)) * 100
	res.ConversionMatchRate = utils.SafeDiv(total, float64(res.ConvertedSessions)) * 100
	res.RevenueCoverage = utils.SafeDiv(res.MatchedRevenue, res.TotalConvertedRevenue) * 100

	return res
}

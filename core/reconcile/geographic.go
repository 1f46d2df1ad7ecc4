package reconcile

import (
	"context"
	"math"

	"commerce-linker/core/utils"
)

// GeographicPass links converted sessions to an active account in the same
// country whose average order value is closest to the session revenue. An
// account links at most once within this pass.
type GeographicPass struct {
	tolerance float64
}

// NewGeographicPass creates the geographic/behavioural pass.
func NewGeographicPass(tolerance float64) *GeographicPass {
	return &GeographicPass{tolerance: tolerance}
}

func (p *GeographicPass) Type() MatchType {
	return MatchGeographicBehavioral
}

func (p *GeographicPass) Apply(ctx context.Context, in Input, state *State) error {
	used := make(map[string]struct{})

	for i, s := range in.Sessions {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		if !s.Converted || state.IsMatched(s.SessionID) {
			continue
		}

		best := -1
		bestDelta := math.Inf(1)
		for j, a := range in.Accounts {
			if a.Country != s.CustomerCountry || !a.IsActive() {
				continue
			}
			delta := math.Abs(a.AverageOrderValue - s.Revenue)
			if delta > p.tolerance || a.AccountCreatedDate.After(s.SessionDate) {
				continue
			}
			if delta < bestDelta {
				best, bestDelta = j, delta
			}
		}
		if best < 0 {
			continue
		}

		acc := in.Accounts[best]
		if _, taken := used[acc.CustomerID]; taken {
			continue
		}
		used[acc.CustomerID] = struct{}{}

		avg := acc.AverageOrderValue
		delta := utils.Round2(bestDelta)
		state.Add(Match{
			Type:              MatchGeographicBehavioral,
			SessionID:         s.SessionID,
			CustomerID:        s.CustomerID,
			AccountCustomerID: acc.CustomerID,
			Confidence:        ConfidenceMedium,
			Converted:         s.Converted,
			Revenue:           s.Revenue,
			Country:           s.CustomerCountry,
			AccountAvgOrder:   &avg,
			RevenueDelta:      &delta,
		})
	}
	return nil
}

package reconcile

import (
	"context"
	"time"
)

// TimingPass links recently active accounts to the unclaimed session in the
// same country closest to their last purchase. Accounts may link several
// times; each session links once.
type TimingPass struct {
	recentDays int
	window     time.Duration
}

// NewTimingPass creates the timing pattern pass.
func NewTimingPass(recentDays int, window time.Duration) *TimingPass {
	return &TimingPass{recentDays: recentDays, window: window}
}

func (p *TimingPass) Type() MatchType {
	return MatchTimingPattern
}

func (p *TimingPass) Apply(ctx context.Context, in Input, state *State) error {
	for i, a := range in.Accounts {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		if a.DaysSinceLastPurchase > p.recentDays {
			continue
		}
		lastPurchase := in.Now.AddDate(0, 0, -a.DaysSinceLastPurchase)

		best := -1
		var bestDist time.Duration
		for j, s := range in.Sessions {
			if s.CustomerCountry != a.Country || state.IsMatched(s.SessionID) {
				continue
			}
			dist := absDuration(s.SessionDate.Sub(lastPurchase))
			if dist > p.window {
				continue
			}
			if best < 0 || dist < bestDist {
				best, bestDist = j, dist
			}
		}
		if best < 0 {
			continue
		}

		s := in.Sessions[best]
		days := int(bestDist / (24 * time.Hour))
		state.Add(Match{
			Type:              MatchTimingPattern,
			SessionID:         s.SessionID,
			CustomerID:        s.CustomerID,
			AccountCustomerID: a.CustomerID,
			Confidence:        ConfidenceLow,
			Converted:         s.Converted,
			Revenue:           s.Revenue,
			Country:           s.CustomerCountry,
			DaysDifference:    &days,
		})
	}
	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

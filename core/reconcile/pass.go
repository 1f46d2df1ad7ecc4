package reconcile

import "context"

// Pass is one matching heuristic. A pass reads the populations, skips
// sessions already claimed in state and records its own matches there.
type Pass interface {
	// Type is the match type this pass emits.
	Type() MatchType

	// Apply runs the heuristic. The only error it returns is ctx.Err().
	Apply(ctx context.Context, in Input, state *State) error
}

// checkEvery is how many loop iterations a pass runs between context checks.
const checkEvery = 256

func cancelled(ctx context.Context, i int) error {
	if i%checkEvery != 0 {
		return nil
	}
	return ctx.Err()
}

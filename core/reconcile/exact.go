package reconcile

import "context"

// ExactEmailPass links sessions and accounts sharing an email address.
// Each shared email yields one match between the first unclaimed session and
// the first account carrying it. Every other session with that email is
// claimed too, so later passes never re-link it.
type ExactEmailPass struct{}

// NewExactEmailPass creates the exact email pass.
func NewExactEmailPass() *ExactEmailPass {
	return &ExactEmailPass{}
}

func (p *ExactEmailPass) Type() MatchType {
	return MatchExactEmail
}

func (p *ExactEmailPass) Apply(ctx context.Context, in Input, state *State) error {
	firstAccount := make(map[string]int, len(in.Accounts))
	for i, a := range in.Accounts {
		if a.EmailAddress == "" {
			continue
		}
		if _, ok := firstAccount[a.EmailAddress]; !ok {
			firstAccount[a.EmailAddress] = i
		}
	}
	if len(firstAccount) == 0 {
		return nil
	}

	linked := make(map[string]struct{})
	for i, s := range in.Sessions {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		if s.CustomerEmail == "" || state.IsMatched(s.SessionID) {
			continue
		}
		idx, ok := firstAccount[s.CustomerEmail]
		if !ok {
			continue
		}
		if _, done := linked[s.CustomerEmail]; done {
			state.Claim(s.SessionID)
			continue
		}
		linked[s.CustomerEmail] = struct{}{}

		state.Add(Match{
			Type:              MatchExactEmail,
			SessionID:         s.SessionID,
			CustomerID:        s.CustomerID,
			AccountCustomerID: in.Accounts[idx].CustomerID,
			Confidence:        ConfidenceHigh,
			Converted:         s.Converted,
			Revenue:           s.Revenue,
			Country:           s.CustomerCountry,
			Email:             s.CustomerEmail,
		})
	}
	return nil
}

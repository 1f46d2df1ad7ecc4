// Package reconcile links anonymous website sessions to registered customer
// accounts.
//
// An Engine runs an ordered cascade of passes over one session population and
// one account population:
//
//  1. ExactEmailPass links sessions whose email equals an account email.
//  2. GeographicPass links converted sessions to an active account in the
//     same country whose average order value is within a revenue tolerance.
//  3. TimingPass links recently active accounts to the session closest to
//     their last purchase.
//
// A session is claimed by at most one pass. Passes share a State that holds
// the claimed sessions and the emitted matches; Summarize turns the final
// State into a Result with per-pass counts and percentage rates.
//
// # Usage
//
//	engine := reconcile.NewEngine(reconcile.DefaultConfig())
//	result, err := engine.Run(ctx, sessions, accounts)
//
// ResultCache keeps results per dataset id so repeated requests against the
// same dataset do not rerun the cascade.
package reconcile

// Package generator builds the synthetic account and session populations.
//
// # Accounts
//
// GenerateAccounts draws a country, an account age from weighted buckets
// (1-90, 91-365 and 366-1095 days at 40/35/25), purchase history, and
// classifies the result with models.ClassifySegment. Derived flags and the
// customer value score are computed over the finished population, which is
// returned best customers first.
//
// # Sessions
//
// GenerateSessions assigns each visit a customer id from a pool of
// max(100, n/2) ids. When accounts are supplied, converted sessions borrow an
// account identity 70% of the time and browsing sessions 15% of the time.
// Borrowed conversions rarely use guest checkout. Lifetime value and the
// running session count are computed in generation order before the output is
// sorted by timestamp.
//
// # Limits
//
// Requested sizes are clamped to Config.MaxAccounts and Config.MaxSessions
// without error. A fixed Config.Seed (or WithSource) and WithClock make a run
// fully reproducible, ids included.
package generator

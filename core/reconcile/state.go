package reconcile

// State accumulates the matched session set and the ordered match list
// while passes run. Passes only read sessions that are not yet claimed.
type State struct {
	matched map[string]struct{}
	order   []string
	matches []Match
	counts  map[MatchType]int
}

// NewState creates an empty accumulator.
func NewState() *State {
	return &State{
		matched: make(map[string]struct{}),
		counts:  make(map[MatchType]int),
	}
}

// IsMatched reports whether a session was already claimed.
func (s *State) IsMatched(sessionID string) bool {
	_, ok := s.matched[sessionID]
	return ok
}

// Claim marks a session as matched without emitting a match record.
// It returns false when the session was already claimed.
func (s *State) Claim(sessionID string) bool {
	if s.IsMatched(sessionID) {
		return false
	}
	s.matched[sessionID] = struct{}{}
	s.order = append(s.order, sessionID)
	return true
}

// Add claims the match's session and records the match.
// Matches for already claimed sessions are dropped and Add returns false.
func (s *State) Add(m Match) bool {
	if !s.Claim(m.SessionID) {
		return false
	}
	s.matches = append(s.matches, m)
	s.counts[m.Type]++
	return true
}

// Count returns how many matches of a type were recorded.
func (s *State) Count(t MatchType) int {
	return s.counts[t]
}

// Matches returns the recorded matches in emission order.
func (s *State) Matches() []Match {
	return s.matches
}

// MatchedSessionIDs returns claimed session ids in claim order.
func (s *State) MatchedSessionIDs() []string {
	return s.order
}

// Len is the number of claimed sessions.
func (s *State) Len() int {
	return len(s.matched)
}

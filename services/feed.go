package services

import (
	"sync"

	"codesaathi_server/models"
)

// CandidateFeed is the ordered queue of profiles presented for swipe
// decisions. The ordering is fixed at construction and the cursor only
// moves forward, so a candidate can never be re-decided.
type CandidateFeed struct {
	mu       sync.Mutex
	profiles []models.UserProfile
	cursor   int
	ledger   *MatchLedger
}

func NewCandidateFeed(profiles []models.UserProfile, ledger *MatchLedger) *CandidateFeed {
	return &CandidateFeed{profiles: profiles, ledger: ledger}
}

// Current returns the candidate under the cursor, or nil once the feed is
// exhausted.
func (f *CandidateFeed) Current() *models.UserProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentLocked()
}

func (f *CandidateFeed) currentLocked() *models.UserProfile {
	if f.cursor >= len(f.profiles) {
		return nil
	}
	profile := f.profiles[f.cursor]
	return &profile
}

// Decide records a swipe on the current candidate. An accept appends the
// candidate to the match ledger before the cursor advances. Once the feed
// is exhausted, further decisions are no-ops.
func (f *CandidateFeed) Decide(direction string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.currentLocked()
	if current == nil {
		return
	}

	if direction == models.SwipeAccept && f.ledger != nil {
		f.ledger.Append(*current)
	}
	f.cursor++
}

// Remaining reports how many candidates are left, the current one included.
func (f *CandidateFeed) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.profiles) - f.cursor
}

// MatchLedger accumulates accepted candidates for the session, in the order
// they were accepted. There is no removal.
type MatchLedger struct {
	mu      sync.Mutex
	matches []models.UserProfile
}

func NewMatchLedger() *MatchLedger {
	return &MatchLedger{}
}

func (l *MatchLedger) Append(profile models.UserProfile) {
	l.mu.Lock()
	l.matches = append(l.matches, profile)
	l.mu.Unlock()
}

// All returns a snapshot of the ledger in insertion order.
func (l *MatchLedger) All() []models.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.UserProfile, len(l.matches))
	copy(out, l.matches)
	return out
}

// Find returns the match with the given userId, or nil.
func (l *MatchLedger) Find(userID string) *models.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.matches {
		if m.UserID == userID {
			match := m
			return &match
		}
	}
	return nil
}

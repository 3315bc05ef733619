package source

import (
	"context"
	"sync"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// Static implements a participant source with a fixed list of
// participants.
type Static struct {
	mu           sync.RWMutex
	participants []*types.Participant
	noShows      []*types.Participant
}

var _ types.ParticipantSource = (*Static)(nil)

// NewStatic creates a new static participant source.
//
// The source returns a fixed list that never changes. Useful for
// testing and scenarios where the roster is known at startup.
//
// Parameters:
//   - participants: Checked-in participants
//   - noShows: Registered entrants that did not check in
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(participants, nil)
//	checkedIn, _, _ := src.Participants(ctx)
//	roster := types.NewRoster(checkedIn, cfg.Heats)
func NewStatic(participants, noShows []*types.Participant) *Static {
	return &Static{
		participants: participants,
		noShows:      noShows,
	}
}

// Participants returns the static participant lists.
//
// Returns:
//   - []*types.Participant: Checked-in participants
//   - []*types.Participant: No-shows
//   - error: Always nil (never fails)
func (s *Static) Participants(_ context.Context) ([]*types.Participant, []*types.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checkedIn := make([]*types.Participant, len(s.participants))
	copy(checkedIn, s.participants)

	noShows := make([]*types.Participant, len(s.noShows))
	copy(noShows, s.noShows)

	return checkedIn, noShows, nil
}

// Update replaces the participant lists.
//
// This allows the static source to simulate check-in changes between
// runs, which is useful for testing re-scheduling scenarios.
//
// Parameters:
//   - participants: New checked-in list
//   - noShows: New no-show list
func (s *Static) Update(participants, noShows []*types.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.participants = make([]*types.Participant, len(participants))
	copy(s.participants, participants)

	s.noShows = make([]*types.Participant, len(noShows))
	copy(s.noShows, noShows)
}

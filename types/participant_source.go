package types

import "context"

// ParticipantSource supplies the checked-in participants for a
// scheduling run.
//
// Sources perform whatever ingestion they need (file parsing, API
// calls) and return finalized participant records; the scheduler never
// performs I/O itself. The second return slice lists entrants that did
// not check in, kept for reporting.
type ParticipantSource interface {
	// Participants returns checked-in participants and no-shows.
	Participants(ctx context.Context) (checkedIn, noShows []*Participant, err error)
}

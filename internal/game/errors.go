// internal/game/errors.go
package game

import "errors"

// Rejection taxonomy. Every public operation validates before mutating, so a
// returned error means no state changed. Callers match with errors.Is; the
// wrapped detail is enough to render a user-facing message.
var (
	// ErrOutOfTurn: a bid or play submitted by someone other than the
	// expected actor.
	ErrOutOfTurn = errors.New("out of turn")

	// ErrIllegalBid: value outside {0,2,3,4,5} or not strictly above the
	// current high bid.
	ErrIllegalBid = errors.New("illegal bid")

	// ErrIllegalPlay: card not held, or the follow-suit/trump rule was
	// violated.
	ErrIllegalPlay = errors.New("illegal play")

	// ErrPhaseViolation: operation attempted in the wrong hand or game
	// phase.
	ErrPhaseViolation = errors.New("phase violation")

	// ErrConfiguration: bad seating, wrong player count, or an uneven
	// team split.
	ErrConfiguration = errors.New("configuration error")
)

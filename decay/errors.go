package decay

import "errors"

var (
	// ErrMalformedDecayLine is returned when a declaration lacks the arrow
	// separator or has an empty mother or daughter segment.
	ErrMalformedDecayLine = errors.New("decay: malformed decay line")

	// ErrNoHeadFound is returned when a chain has zero or several mothers
	// that are never a daughter of another line.
	ErrNoHeadFound = errors.New("decay: no unique head particle")

	// ErrDisconnectedChain is returned when a mother cannot be reached from
	// the head of the chain.
	ErrDisconnectedChain = errors.New("decay: disconnected decay chain")
)

package dawg

import "errors"

// Sentinel error kinds, checked with errors.Is by callers that need to
// distinguish a bad word list from a capacity or verification failure.
var (
	// ErrInvalidInput indicates the word list contains a disallowed
	// character, is not strictly ascending, has a duplicate, or
	// contains an empty token.
	ErrInvalidInput = errors.New("dawg: invalid input")

	// ErrCapacityExceeded indicates the linearized array would exceed
	// 2^22 nodes, the largest offset a 22-bit children field can hold.
	ErrCapacityExceeded = errors.New("dawg: capacity exceeded")

	// ErrCorruptionDetected indicates the verifier's re-extracted word
	// set disagreed with the input, signalling a pipeline bug or a
	// suffix-hash collision.
	ErrCorruptionDetected = errors.New("dawg: corruption detected")
)

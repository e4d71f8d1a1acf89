package shamir

import (
	"errors"
	"fmt"

	"github.com/seedshard/seedshard/gf"
)

// ErrTooFewShares is returned by Split when k is smaller than the number of
// secret elements being split.
var ErrTooFewShares = errors.New("shamir: k is smaller than the secret's element count")

// ErrNotEnoughShares is returned by Split when n is smaller than k.
var ErrNotEnoughShares = errors.New("shamir: n is smaller than k")

// ErrConflictingShares is returned by Recover when two accepted shares share
// an x-coordinate but disagree on y. The source silently deduplicates here
// (spec.md §9's "open questions" flags this); this rewrite treats it as a
// hard error instead, since two shares claiming the same x-coordinate with
// different values can never both be honest.
var ErrConflictingShares = errors.New("shamir: two shares share an x-coordinate but disagree")

// TooFewValidSharesError is returned by Recover when fewer than k shares
// pass verification. It carries the rejected shares so the caller can
// report which ones failed.
type TooFewValidSharesError struct {
	Rejected []gf.FieldElement
	Accepted int
	Needed   int
}

func (e *TooFewValidSharesError) Error() string {
	return fmt.Sprintf("shamir: only %d of %d required shares verified (%d rejected)",
		e.Accepted, e.Needed, len(e.Rejected))
}

// Is reports whether target is also a *TooFewValidSharesError, so callers
// can use errors.Is(err, shamir.ErrTooFewValidShares) as a type check
// without caring about the payload.
func (e *TooFewValidSharesError) Is(target error) bool {
	_, ok := target.(*TooFewValidSharesError)
	return ok
}

// ErrTooFewValidShares is a sentinel usable with errors.Is to detect a
// *TooFewValidSharesError without extracting its payload; extract the
// payload with errors.As when the rejected list is needed.
var ErrTooFewValidShares = &TooFewValidSharesError{}

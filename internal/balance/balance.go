// Package balance classifies integers by parity and computes how far a
// sequence is from having even and odd counts that differ by at most one.
package balance

import (
	"fmt"

	"paritybalance/internal/utils"
)

// Sequence is the immutable input loaded once at startup.
type Sequence []int64

// Counts is the even/odd split of a Sequence. Even+Odd always equals the
// sequence length.
type Counts struct {
	Even int `json:"even"`
	Odd  int `json:"odd"`
}

// Total returns Even+Odd.
func (c Counts) Total() int { return c.Even + c.Odd }

// Balanced reports whether the counts differ by at most one.
func (c Counts) Balanced() bool { return utils.AbsDiff(c.Even, c.Odd) <= 1 }

// MajorityEven reports whether evens outnumber odds.
func (c Counts) MajorityEven() bool { return c.Even > c.Odd }

// IsEven uses the low bit, so negative odd values (remainder -1) are odd.
func IsEven(v int64) bool { return v&1 == 0 }

// Count classifies every element in a single pass.
func Count(seq Sequence) Counts {
	var c Counts
	for _, v := range seq {
		if IsEven(v) {
			c.Even++
		} else {
			c.Odd++
		}
	}
	return c
}

// InvariantError signals a counting defect: the parity counts do not add up to
// the number of elements. It never results from valid or invalid input.
type InvariantError struct {
	Counts Counts
	N      int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("parity count invariant violated: even=%d odd=%d n=%d", e.Counts.Even, e.Counts.Odd, e.N)
}

// CheckCounts verifies Even+Odd == n.
func CheckCounts(c Counts, n int) error {
	if c.Even < 0 || c.Odd < 0 || c.Total() != n {
		return &InvariantError{Counts: c, N: n}
	}
	return nil
}

// Excess is the number of majority-parity elements beyond what balance
// allows: max(0, |even-odd| - 1).
func Excess(c Counts) int {
	return utils.Max(0, utils.AbsDiff(c.Even, c.Odd)-1)
}

// MinChanges returns the minimum number of elements whose parity must be
// reassigned so that the counts differ by at most one.
func MinChanges(c Counts) int {
	if c.Balanced() {
		return 0
	}
	return Excess(c)
}

package balance

import "fmt"

// Mode selects which question Solve answers.
type Mode string

const (
	// ModeCount is the minimum number of parity reassignments.
	ModeCount Mode = "count"
	// ModeMinSum is the minimum sum left after alternating-parity deletion.
	ModeMinSum Mode = "min-sum"
)

// Modes lists the supported modes in help order.
func Modes() []Mode { return []Mode{ModeCount, ModeMinSum} }

// ParseMode maps a user-supplied name onto a Mode.
func ParseMode(raw string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == raw {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", raw, ModeCount, ModeMinSum)
}

// Result is the outcome of Solve.
type Result struct {
	Mode   Mode
	N      int
	Counts Counts
	Value  int64
}

// Solve counts parities, checks the count invariant, then computes the
// answer for mode.
func Solve(seq Sequence, mode Mode) (Result, error) {
	c := Count(seq)
	if err := CheckCounts(c, len(seq)); err != nil {
		return Result{}, err
	}

	res := Result{Mode: mode, N: len(seq), Counts: c}
	switch mode {
	case ModeCount, "":
		res.Mode = ModeCount
		res.Value = int64(MinChanges(c))
	case ModeMinSum:
		sum, err := MinRemainingSum(seq)
		if err != nil {
			return Result{}, err
		}
		res.Value = sum
	default:
		return Result{}, fmt.Errorf("unknown mode %q", mode)
	}
	return res, nil
}

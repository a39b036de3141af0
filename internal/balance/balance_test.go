package balance

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestCountAndMinChangesScenarios(t *testing.T) {
	tests := []struct {
		name      string
		seq       Sequence
		wantEven  int
		wantOdd   int
		wantValue int
	}{
		{"mixed balanced", Sequence{1, 2, 3, 4}, 2, 2, 0},
		{"odd majority", Sequence{1, 3, 5, 7, 2}, 1, 4, 2},
		{"single odd", Sequence{7}, 0, 1, 0},
		{"all even", Sequence{2, 4, 6, 8, 10, 12}, 6, 0, 5},
		{"empty", Sequence{}, 0, 0, 0},
		{"nil", nil, 0, 0, 0},
		{"negative odds", Sequence{-1, -3, -5, -7}, 0, 4, 3},
		{"negative evens and zero", Sequence{-2, 0, -4, 3}, 3, 1, 1},
		{"extremes", Sequence{math.MinInt64, math.MaxInt64}, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Count(tt.seq)
			if c.Even != tt.wantEven || c.Odd != tt.wantOdd {
				t.Fatalf("Count() = %+v, want even=%d odd=%d", c, tt.wantEven, tt.wantOdd)
			}
			if err := CheckCounts(c, len(tt.seq)); err != nil {
				t.Fatalf("CheckCounts() error = %v", err)
			}
			if got := MinChanges(c); got != tt.wantValue {
				t.Fatalf("MinChanges(%+v) = %d, want %d", c, got, tt.wantValue)
			}
		})
	}
}

func TestAllSameParityNeedsNMinusOne(t *testing.T) {
	for n := 1; n <= 50; n++ {
		seq := make(Sequence, n)
		for i := range seq {
			seq[i] = int64(2*i + 1)
		}
		if got := MinChanges(Count(seq)); got != n-1 {
			t.Fatalf("n=%d: MinChanges() = %d, want %d", n, got, n-1)
		}
	}
}

func TestMinChangesMatchesFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		seq := make(Sequence, rng.Intn(40))
		for j := range seq {
			seq[j] = rng.Int63n(2001) - 1000
		}

		c := Count(seq)
		if c.Total() != len(seq) {
			t.Fatalf("Count(%v) total = %d, want %d", seq, c.Total(), len(seq))
		}

		diff := c.Even - c.Odd
		if diff < 0 {
			diff = -diff
		}
		want := diff - 1
		if want < 0 {
			want = 0
		}
		if got := MinChanges(c); got != want {
			t.Fatalf("MinChanges(%+v) = %d, want %d", c, got, want)
		}
		if c.Balanced() && MinChanges(c) != 0 {
			t.Fatalf("balanced counts %+v gave non-zero result", c)
		}

		shuffled := append(Sequence(nil), seq...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := MinChanges(Count(shuffled)); got != want {
			t.Fatalf("result changed after reordering: got %d, want %d", got, want)
		}
	}
}

func TestCheckCountsReportsInvariantError(t *testing.T) {
	err := CheckCounts(Counts{Even: 2, Odd: 2}, 5)
	if err == nil {
		t.Fatalf("CheckCounts() expected error")
	}
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("CheckCounts() error = %T, want *InvariantError", err)
	}
	if ie.N != 5 || ie.Counts.Total() != 4 {
		t.Fatalf("unexpected invariant error payload: %+v", ie)
	}

	if err := CheckCounts(Counts{Even: -1, Odd: 6}, 5); err == nil {
		t.Fatalf("CheckCounts() accepted a negative count")
	}
}

func TestMinRemainingSum(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequence
		want int64
	}{
		{"balanced", Sequence{1, 2, 3, 4}, 0},
		{"empty", nil, 0},
		{"odd majority keeps smallest odds", Sequence{7, 5, 3, 1, 2}, 4},
		{"all even", Sequence{12, 10, 8, 6, 4, 2}, 30},
		{"even majority", Sequence{5, 1, 2, 4, 6, 8, 10}, 6},
		{"negative values preferred", Sequence{-4, 8, 2, -6, 1}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinRemainingSum(tt.seq)
			if err != nil {
				t.Fatalf("MinRemainingSum() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("MinRemainingSum(%v) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}

func TestMinRemainingSumOverflow(t *testing.T) {
	seq := Sequence{math.MaxInt64 - 1, math.MaxInt64 - 3, math.MaxInt64 - 5}
	if _, err := MinRemainingSum(seq); !errors.Is(err, ErrSumOverflow) {
		t.Fatalf("MinRemainingSum() error = %v, want %v", err, ErrSumOverflow)
	}
}

func TestSolve(t *testing.T) {
	seq := Sequence{2, 4, 6, 8, 10, 12}

	res, err := Solve(seq, ModeCount)
	if err != nil {
		t.Fatalf("Solve(count) error = %v", err)
	}
	if res.Value != 5 || res.N != 6 || res.Counts.Even != 6 || res.Mode != ModeCount {
		t.Fatalf("Solve(count) = %+v", res)
	}

	res, err = Solve(seq, ModeMinSum)
	if err != nil {
		t.Fatalf("Solve(min-sum) error = %v", err)
	}
	if res.Value != 30 || res.Mode != ModeMinSum {
		t.Fatalf("Solve(min-sum) = %+v", res)
	}

	res, err = Solve(seq, "")
	if err != nil || res.Mode != ModeCount {
		t.Fatalf("Solve(\"\") = %+v, %v; want count mode", res, err)
	}

	if _, err := Solve(seq, Mode("bogus")); err == nil {
		t.Fatalf("Solve(bogus) expected error")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("COUNT"); err == nil {
		t.Fatalf("ParseMode is expected to be case-sensitive")
	}
}

func BenchmarkSolveCount(b *testing.B) {
	seq := make(Sequence, 200000)
	for i := range seq {
		seq[i] = int64(i * 3)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(seq, ModeCount); err != nil {
			b.Fatal(err)
		}
	}
}

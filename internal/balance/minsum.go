package balance

import (
	"container/heap"
	"errors"
	"math"

	"paritybalance/internal/utils"
)

// ErrSumOverflow is returned when the remaining sum does not fit in int64.
var ErrSumOverflow = errors.New("remaining sum overflows int64")

type minHeap []int64

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(int64)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// MinRemainingSum answers the deletion variant of the problem: elements are
// removed alternating parity for as long as possible, and the result is the
// smallest possible sum of what is left. Only Excess(c) majority-parity
// elements survive, so the answer is the sum of the smallest of them.
func MinRemainingSum(seq Sequence) (int64, error) {
	c := Count(seq)
	if err := CheckCounts(c, len(seq)); err != nil {
		return 0, err
	}
	keep := Excess(c)
	if keep == 0 {
		return 0, nil
	}

	wantEven := c.MajorityEven()
	h := make(minHeap, 0, utils.Max(c.Even, c.Odd))
	for _, v := range seq {
		if IsEven(v) == wantEven {
			h = append(h, v)
		}
	}
	heap.Init(&h)

	var sum int64
	for i := 0; i < keep && h.Len() > 0; i++ {
		v := heap.Pop(&h).(int64)
		if (v > 0 && sum > math.MaxInt64-v) || (v < 0 && sum < math.MinInt64-v) {
			return 0, ErrSumOverflow
		}
		sum += v
	}
	return sum, nil
}

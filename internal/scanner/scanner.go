// Package scanner reads the "n, then n integers" input format.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"paritybalance/internal/balance"
	"paritybalance/internal/utils"
)

const (
	// DefaultMaxCount bounds n so a hostile header cannot force a huge
	// allocation before any values are read.
	DefaultMaxCount = 2_000_000

	maxTokenBytes   = 64 * 1024
	tokenPreviewLen = 32

	// initialCapacity caps the up-front allocation; the header is not
	// trusted to size the slice.
	initialCapacity = 1 << 16
)

var (
	ErrMissingCount  = errors.New("missing element count")
	ErrNegativeCount = errors.New("element count is negative")
	ErrTooLarge      = errors.New("element count exceeds limit")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// TokenError reports a token that is not a decimal integer.
type TokenError struct {
	Index int // 0 is the count, 1..n are the values
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("invalid element count %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid value #%d %q: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

type Option func(*Scanner)

// WithMaxCount overrides DefaultMaxCount. Non-positive values keep the default.
func WithMaxCount(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxCount = n
		}
	}
}

// Scanner tokenises whitespace-separated integers.
type Scanner struct {
	sc       *bufio.Scanner
	maxCount int
	trailing int
}

func New(r io.Reader, opts ...Option) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenBytes)
	sc.Split(bufio.ScanWords)

	s := &Scanner{sc: sc, maxCount: DefaultMaxCount}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) next() (string, bool, error) {
	if s.sc.Scan() {
		return s.sc.Text(), true, nil
	}
	if err := s.sc.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

func parseToken(tok string, index int) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &TokenError{Index: index, Token: utils.QuoteToken(tok, tokenPreviewLen), Err: err}
	}
	return v, nil
}

// ReadSequence reads n followed by exactly n integers. Anything after the
// n-th value is consumed and counted, see Trailing.
func (s *Scanner) ReadSequence() (balance.Sequence, error) {
	tok, ok, err := s.next()
	if err != nil {
		return nil, fmt.Errorf("read element count: %w", err)
	}
	if !ok {
		return nil, ErrMissingCount
	}

	n64, err := parseToken(tok, 0)
	if err != nil {
		return nil, err
	}
	if n64 < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n64)
	}
	if n64 > int64(s.maxCount) {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n64, s.maxCount)
	}

	n := int(n64)
	seq := make(balance.Sequence, 0, utils.Min(n, initialCapacity))
	for i := 1; i <= n; i++ {
		tok, ok, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("read value #%d: %w", i, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: read %d of %d values", ErrUnexpectedEOF, len(seq), n)
		}
		v, err := parseToken(tok, i)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}

	for {
		_, ok, err := s.next()
		if err != nil || !ok {
			break
		}
		s.trailing++
	}
	return seq, nil
}

// Trailing returns how many tokens followed the last value.
func (s *Scanner) Trailing() int { return s.trailing }

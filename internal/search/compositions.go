package search

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidWidthError reports a request for compositions of non-positive
// width.
type InvalidWidthError struct {
	N int
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("composition width must be positive, got %d", e.N)
}

// Composition is a vector of positive integers. Each entry is the
// number of times the corresponding truth-table column is repeated in
// the emitted constraint.
type Composition []int

// Total returns the sum of the entries.
func (c Composition) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

func (c Composition) String() string {
	s := make([]string, len(c))
	for i, v := range c {
		s[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(s, ",") + "]"
}

// Stream generates every Composition of a fixed width, ordered by
// ascending sum and, within a sum, in ascending lexicographic order
// (the first entry varies slowest). The sequence is infinite; state is
// a single current vector, so the stream never materializes a sum
// group, let alone the whole sequence.
type Stream struct {
	n   int
	sum int
	cur []int
}

// NewStream returns a Stream over compositions of width n.
func NewStream(n int) (*Stream, error) {
	if n <= 0 {
		return nil, &InvalidWidthError{N: n}
	}
	return &Stream{n: n}, nil
}

// Next fills buf with the next len(buf) compositions in canonical
// order and returns the number written, which is always len(buf) since
// the stream is infinite.
func (s *Stream) Next(buf []Composition) int {
	for i := range buf {
		s.advance()
		buf[i] = Composition(append([]int(nil), s.cur...))
	}
	return len(buf)
}

func (s *Stream) advance() {
	if s.cur == nil {
		// lowest possible sum: all ones
		s.sum = s.n
		s.cur = make([]int, s.n)
		for i := range s.cur {
			s.cur[i] = 1
		}
		return
	}

	// The lexicographic successor within a fixed sum increments the
	// rightmost entry whose suffix can spare a unit, then resets that
	// suffix to its lexicographically least arrangement (all ones,
	// remainder in the last slot).
	suffix := 0
	for i := s.n - 2; i >= 0; i-- {
		suffix += s.cur[i+1]
		slots := s.n - 1 - i
		if suffix > slots {
			s.cur[i]++
			for j := i + 1; j < s.n-1; j++ {
				s.cur[j] = 1
			}
			s.cur[s.n-1] = suffix - slots
			return
		}
	}

	// Exhausted this sum group; restart at the least composition of
	// the next sum.
	s.sum++
	for i := 0; i < s.n-1; i++ {
		s.cur[i] = 1
	}
	s.cur[s.n-1] = s.sum - (s.n - 1)
}

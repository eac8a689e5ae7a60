package search

import (
	"context"
	"errors"
	"runtime"
)

// ErrIncomplete is returned when the context is cancelled before a
// separating vector could be found.
var ErrIncomplete = errors.New("cancelled before a separating vector could be found")

// Search finds the first composition, in canonical stream order, whose
// weighted sums separate a truth table's valid rows from its invalid
// rows. Candidates are evaluated in parallel chunks but accepted
// strictly in stream order, so the result is deterministic for a given
// table regardless of worker count.
type Search struct {
	ncols   int
	valid   [][]bool
	invalid [][]bool

	workers   int
	chunkSize int
}

type Option func(s *Search) error

// WithWorkers caps the number of parallel evaluation workers.
func WithWorkers(n int) Option {
	return func(s *Search) error {
		if n < 0 {
			return errors.New("worker count must not be negative")
		}
		s.workers = n
		return nil
	}
}

// WithChunkSize sets how many candidate vectors each task evaluates.
func WithChunkSize(n int) Option {
	return func(s *Search) error {
		if n < 0 {
			return errors.New("chunk size must not be negative")
		}
		s.chunkSize = n
		return nil
	}
}

var defaults = []Option{
	func(s *Search) error {
		if s.workers == 0 {
			// a multiple of the core count keeps workers supplied
			// while some block on channel handoff
			s.workers = 2 * runtime.NumCPU()
		}
		return nil
	},
	func(s *Search) error {
		if s.chunkSize == 0 {
			s.chunkSize = 64
		}
		return nil
	},
}

func New(ncols int, valid, invalid [][]bool, options ...Option) (*Search, error) {
	if ncols <= 0 {
		return nil, &InvalidWidthError{N: ncols}
	}
	s := Search{ncols: ncols, valid: valid, invalid: invalid}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// chunk is a contiguous slice of the composition stream. match holds
// the first separating candidate within the chunk, or nil. done is
// closed once the chunk has been evaluated; match must not be read
// before then.
type chunk struct {
	candidates []Composition
	match      Composition
	done       chan struct{}
}

// FindFirst returns the minimal-sum, tie-break-first separating
// composition for the search's table. Termination is guaranteed: a
// vector of distinct powers of two makes the weighted sum injective
// over boolean rows, and the stream reaches such a vector in finite
// time. The only error conditions are construction failures and
// cancellation of ctx, which yields ErrIncomplete.
func (s *Search) FindFirst(ctx context.Context) (Composition, error) {
	stream, err := NewStream(s.ncols)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan *chunk)
	pending := make(chan *chunk, s.workers*2)

	for i := 0; i < s.workers; i++ {
		go func() {
			for c := range tasks {
				for _, candidate := range c.candidates {
					if ctx.Err() != nil {
						break
					}
					if IsSeparating(candidate, s.valid, s.invalid) {
						c.match = candidate
						break
					}
				}
				close(c.done)
			}
		}()
	}

	go func() {
		defer close(tasks)
		defer close(pending)
		for {
			buf := make([]Composition, s.chunkSize)
			stream.Next(buf)
			c := &chunk{candidates: buf, done: make(chan struct{})}
			select {
			case pending <- c:
			case <-ctx.Done():
				return
			}
			select {
			case tasks <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Consume chunks in generation order: a candidate is accepted only
	// after every earlier chunk has been fully evaluated and rejected,
	// so the result is the canonically least separating vector no
	// matter how evaluation interleaves.
	for c := range pending {
		select {
		case <-c.done:
		case <-ctx.Done():
			return nil, ErrIncomplete
		}
		if c.match != nil {
			return c.match, nil
		}
	}
	return nil, ErrIncomplete
}

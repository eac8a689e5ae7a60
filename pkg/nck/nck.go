// Package nck renders coefficient vectors as NchooseK constraints: a
// list of boolean ports, with repetition, together with the set of
// admissible counts of true ports.
package nck

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Constraint declares that the number of true values among Ports must
// equal one of Tallies. Ports may repeat. A soft constraint is allowed
// to be broken at a penalty.
type Constraint struct {
	Ports   []string
	Tallies []int
	Soft    bool
}

// FromCoefficients expands a coefficient vector into a Constraint:
// column i becomes PortName(i) repeated coeffs[i] times. Tallies are
// deduplicated and sorted ascending.
func FromCoefficients(coeffs []int, tallies []int) Constraint {
	var ports []string
	for i, reps := range coeffs {
		for j := 0; j < reps; j++ {
			ports = append(ports, PortName(i))
		}
	}
	sorted := lo.Uniq(tallies)
	sort.Ints(sorted)
	return Constraint{Ports: ports, Tallies: sorted}
}

// Repetitions recovers the per-port repetition counts from the port
// list, one entry per run of equal names.
func (c Constraint) Repetitions() []int {
	var reps []int
	for i, port := range c.Ports {
		if i > 0 && port == c.Ports[i-1] {
			reps[len(reps)-1]++
			continue
		}
		reps = append(reps, 1)
	}
	return reps
}

// String renders the constraint in the form accepted by an NchooseK
// environment's nck() registration call, e.g. nck([A,B,B], [0,1]).
func (c Constraint) String() string {
	return fmt.Sprintf("nck([%s], %s)", strings.Join(c.Ports, ","), c.TallyList())
}

// Choose renders the constraint in the diagnostic "ports choose
// tallies" form, with a trailing marker for soft constraints.
func (c Constraint) Choose() string {
	msg := fmt.Sprintf("[%s] choose %s", strings.Join(c.Ports, " "), c.TallyList())
	if c.Soft {
		msg += " (soft)"
	}
	return msg
}

// TallyList renders the admissible-count set as [t1,t2,...].
func (c Constraint) TallyList() string {
	s := lo.Map(c.Tallies, func(t int, _ int) string {
		return strconv.Itoa(t)
	})
	return "[" + strings.Join(s, ",") + "]"
}

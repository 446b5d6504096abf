// Package sequence mints the human-readable record identifiers used by
// the placement hub ("INT001", "APP042", ...).
//
// A Sequence is a monotonic counter seeded once from the highest numeric
// suffix present in the loaded collection, so minting an id is O(1)
// instead of a rescan per insert. Seeding is gap-tolerant: missing or
// foreign ids are simply ignored. Ids are never reused, which keeps the
// scheme collision-free under the single-writer model.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence mints ids with a fixed prefix and zero-padded counter.
type Sequence struct {
	prefix string
	width  int
	last   int
}

// New creates a sequence for the given prefix with the given minimum
// number of counter digits (e.g. "INT", 3 → INT001).
func New(prefix string, width int) *Sequence {
	return &Sequence{prefix: prefix, width: width}
}

// Seed advances the counter past every matching id in the slice.
// Ids with a different prefix or a non-numeric suffix are ignored.
func (s *Sequence) Seed(ids []string) {
	for _, id := range ids {
		s.Observe(id)
	}
}

// Observe advances the counter past a single id if it matches.
func (s *Sequence) Observe(id string) {
	id = strings.TrimSpace(id)
	if !strings.HasPrefix(strings.ToUpper(id), s.prefix) {
		return
	}
	n, err := strconv.Atoi(id[len(s.prefix):])
	if err != nil {
		return
	}
	if n > s.last {
		s.last = n
	}
}

// Next mints the next id.
func (s *Sequence) Next() string {
	s.last++
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, s.last)
}

// Last returns the highest counter value seen or minted so far.
func (s *Sequence) Last() int {
	return s.last
}

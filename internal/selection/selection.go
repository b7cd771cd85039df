// Package selection enforces the slot-selection rules for one in-progress
// booking attempt: single mode swaps freely, multiple mode only ever holds
// one contiguous run of slot indices.
package selection

import (
	"errors"
	"sort"
)

type Mode string

const (
	ModeSingle   Mode = "single"
	ModeMultiple Mode = "multiple"
)

// Rejection signals. These are warnings for the caller to surface, not
// failures; the selection is left untouched when they are returned.
var (
	ErrNotConsecutive = errors.New("select consecutive slots only")
	ErrSlotBooked     = errors.New("slot is already booked")
	ErrUnknownSlot    = errors.New("slot is not part of this day's schedule")
)

// Selection is the set of slot indices currently chosen. Indices refer to
// positions in the generated slot sequence for one (date, pitch type) pair.
type Selection struct {
	mode    Mode
	indices []int // sorted ascending, no duplicates
}

func New(mode Mode) *Selection {
	if mode != ModeSingle && mode != ModeMultiple {
		mode = ModeSingle
	}
	return &Selection{mode: mode}
}

// FromIndices rebuilds a selection from a previous state. Duplicates are
// dropped; order does not matter.
func FromIndices(mode Mode, indices []int) *Selection {
	s := New(mode)
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if _, dup := seen[idx]; dup || idx < 0 {
			continue
		}
		seen[idx] = struct{}{}
		s.indices = append(s.indices, idx)
	}
	sort.Ints(s.indices)
	return s
}

func (s *Selection) Mode() Mode  { return s.mode }
func (s *Selection) Empty() bool { return len(s.indices) == 0 }
func (s *Selection) Len() int    { return len(s.indices) }

// Indices returns a copy of the selected indices in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

func (s *Selection) Contains(idx int) bool {
	for _, i := range s.indices {
		if i == idx {
			return true
		}
	}
	return false
}

// Add attempts to select the slot at idx. booked marks slots already taken,
// which are rejected in every mode. In multiple mode the new index must
// extend the run by one on either side, or fall strictly between the current
// bounds; anything else is rejected with ErrNotConsecutive.
func (s *Selection) Add(idx int, booked bool) error {
	if idx < 0 {
		return ErrUnknownSlot
	}
	if booked {
		return ErrSlotBooked
	}

	if s.mode == ModeSingle {
		s.indices = []int{idx}
		return nil
	}

	if len(s.indices) == 0 {
		s.indices = []int{idx}
		return nil
	}
	if s.Contains(idx) {
		return nil
	}

	min, max := s.indices[0], s.indices[len(s.indices)-1]
	if idx != min-1 && idx != max+1 && !(idx > min && idx < max) {
		return ErrNotConsecutive
	}

	s.indices = append(s.indices, idx)
	sort.Ints(s.indices)
	return nil
}

// Remove deselects the slot at idx. If removal would split the run in two,
// only the longest remaining contiguous run survives (earliest run wins a
// tie) and the rest is dropped.
func (s *Selection) Remove(idx int) {
	pos := -1
	for i, v := range s.indices {
		if v == idx {
			pos = i
			break
		}
	}
	if pos == -1 {
		return
	}

	remaining := append(s.indices[:pos:pos], s.indices[pos+1:]...)
	s.indices = longestRun(remaining)
}

// longestRun returns the longest contiguous run within sorted indices,
// preferring the earliest run on equal length.
func longestRun(sorted []int) []int {
	if len(sorted) == 0 {
		return nil
	}

	bestStart, bestLen := 0, 1
	runStart := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1]+1 {
			continue
		}
		// Strict > keeps the earliest run on a tie.
		if runLen := i - runStart; runLen > bestLen {
			bestStart, bestLen = runStart, runLen
		}
		runStart = i
	}

	return append([]int(nil), sorted[bestStart:bestStart+bestLen]...)
}

// IsContiguous reports whether indices form one unbroken ascending range.
// Used at submission time to re-check a selection assembled by the client.
func IsContiguous(indices []int) bool {
	if len(indices) == 0 {
		return false
	}
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

package step

import (
	"fmt"
	"iter"
)

// Sequence is the frozen, ordered output of one algorithm run.
// The zero value is an empty sequence.
type Sequence struct {
	steps []Step
}

// NewSequence copies steps into a new Sequence.
func NewSequence(steps ...Step) Sequence {
	cp := make([]Step, len(steps))
	copy(cp, steps)

	return Sequence{steps: cp}
}

// Len returns the number of steps.
func (s Sequence) Len() int { return len(s.steps) }

// Last returns the index of the final step, or -1 when empty.
func (s Sequence) Last() int { return len(s.steps) - 1 }

// At returns step i.
func (s Sequence) At(i int) (Step, error) {
	if i < 0 || i >= len(s.steps) {
		return Step{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.steps))
	}

	return s.steps[i], nil
}

// Slice returns a copy of all steps.
func (s Sequence) Slice() []Step {
	cp := make([]Step, len(s.steps))
	copy(cp, s.steps)

	return cp
}

// All iterates (index, step) pairs in order.
func (s Sequence) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, st := range s.steps {
			if !yield(i, st) {
				return
			}
		}
	}
}

// Prefix iterates steps 0..index inclusive. index must be valid.
func (s Sequence) Prefix(index int) iter.Seq2[int, Step] {
	return s.Range(0, index)
}

// Range iterates steps from..to inclusive, clamped to the sequence.
func (s Sequence) Range(from, to int) iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		if from < 0 {
			from = 0
		}
		for i := from; i <= to && i < len(s.steps); i++ {
			if !yield(i, s.steps[i]) {
				return
			}
		}
	}
}

// Count returns how many steps have kind k.
func (s Sequence) Count(k Kind) int {
	n := 0
	for _, st := range s.steps {
		if st.Kind == k {
			n++
		}
	}

	return n
}

// Equal reports whether both sequences hold identical steps.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.steps) != len(other.steps) {
		return false
	}
	for i := range s.steps {
		if s.steps[i] != other.steps[i] {
			return false
		}
	}

	return true
}

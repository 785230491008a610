package runtime

import "strings"

const defaultSeqCapacity = 4

// Seq is a growable ordered container with amortized O(1) append. Capacity
// starts at 4, doubles when full, and never shrinks on removal.
type Seq[T any] struct {
	elems []T
}

// NewSeq returns an empty sequence with the default starting capacity.
func NewSeq[T any]() *Seq[T] {
	return NewSeqWithCapacity[T](defaultSeqCapacity)
}

// NewSeqWithCapacity returns an empty sequence sized for hint elements.
// A non-positive hint falls back to the default capacity.
func NewSeqWithCapacity[T any](hint int) *Seq[T] {
	if hint <= 0 {
		hint = defaultSeqCapacity
	}
	return &Seq[T]{elems: make([]T, 0, hint)}
}

// SeqOf builds a sequence by pushing items in order.
func SeqOf[T any](items ...T) *Seq[T] {
	s := NewSeq[T]()
	for _, item := range items {
		s.Push(item)
	}
	return s
}

// Len reports the count of live elements.
func (s *Seq[T]) Len() int { return len(s.elems) }

// Cap reports the allocated slot count.
func (s *Seq[T]) Cap() int { return cap(s.elems) }

// Push appends item at the end, doubling the capacity first when full.
func (s *Seq[T]) Push(item T) {
	if len(s.elems) == cap(s.elems) {
		grownCap := cap(s.elems) * 2
		if grownCap == 0 {
			grownCap = defaultSeqCapacity
		}
		grown := make([]T, len(s.elems), grownCap)
		copy(grown, s.elems)
		s.elems = grown
	}
	s.elems = append(s.elems, item)
}

// Pop removes and returns the last element. Popping an empty sequence is an
// explicit failure, never a silent zero value.
func (s *Seq[T]) Pop() (T, error) {
	var zero T
	if len(s.elems) == 0 {
		return zero, &EmptyContainerError{Op: "pop"}
	}
	last := len(s.elems) - 1
	item := s.elems[last]
	s.elems[last] = zero
	s.elems = s.elems[:last]
	return item, nil
}

// At returns the element at index i, reporting whether i was in bounds.
func (s *Seq[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, false
	}
	return s.elems[i], true
}

// Map returns a new sequence of equal length with transform applied to each
// element in order. The receiver is not modified.
func (s *Seq[T]) Map(transform func(T) T) *Seq[T] {
	out := NewSeq[T]()
	for _, item := range s.elems {
		out.Push(transform(item))
	}
	return out
}

// Filter returns a new sequence holding the elements for which predicate
// holds, relative order preserved.
func (s *Seq[T]) Filter(predicate func(T) bool) *Seq[T] {
	out := NewSeq[T]()
	for _, item := range s.elems {
		if predicate(item) {
			out.Push(item)
		}
	}
	return out
}

// Reduce left-folds the sequence: acc starts at initial and combine is
// applied once per element in order.
func (s *Seq[T]) Reduce(initial T, combine func(acc, item T) T) T {
	acc := initial
	for _, item := range s.elems {
		acc = combine(acc, item)
	}
	return acc
}

// ForEach invokes visit on each element in order, for side effects only.
func (s *Seq[T]) ForEach(visit func(T)) {
	for _, item := range s.elems {
		visit(item)
	}
}

// Reverse swaps elements end-to-end in place without reallocating.
func (s *Seq[T]) Reverse() {
	for i, j := 0, len(s.elems)-1; i < j; i, j = i+1, j-1 {
		s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	}
}

// Join concatenates the elements of a string sequence with sep between
// consecutive elements. An empty sequence joins to the empty string.
func Join(s *Seq[string], sep string) string {
	if s.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range s.elems {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(item)
	}
	return b.String()
}

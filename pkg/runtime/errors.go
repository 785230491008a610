package runtime

import "fmt"

// EmptyContainerError reports a removal attempted on a container with no
// elements. The original target returned a zero sentinel here; that is the
// flagged defect, so the condition surfaces as an explicit error instead.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return fmt.Sprintf("%s on empty sequence", e.Op)
}

// OutOfRangeError reports an index outside a container's bounds. The string
// operations clamp or return degenerate empty results instead of failing, so
// they never produce it; it exists for surfaces that choose failure over a
// degenerate result.
type OutOfRangeError struct {
	Op     string
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range for length %d", e.Op, e.Index, e.Length)
}

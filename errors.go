package cssel

import "fmt"

// DuplicateFragmentError reports an append of a single-occurrence kind
// (element, id or pseudo-element) onto a chain that already contains a
// fragment of that kind.
type DuplicateFragmentError struct {
	Kind Kind
}

func (e *DuplicateFragmentError) Error() string {
	return fmt.Sprintf("duplicate %s fragment: element, id and pseudo-element may occur only once per selector", e.Kind)
}

// OrderViolationError reports an append that would place a fragment
// after one it must precede. After is the chain kind that sorts after
// the appended Kind.
type OrderViolationError struct {
	Kind  Kind
	After Kind
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("%s fragment cannot follow %s: fragments must be arranged element, id, class, attribute, pseudo-class, pseudo-element", e.Kind, e.After)
}

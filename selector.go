package cssel

// Selector is one fragment of a compound selector together with the
// chain it extends. A Selector is immutable once constructed: every
// append returns a new node and leaves the receiver usable as a shared
// prefix for independent extensions.
type Selector struct {
	kind  Kind
	value string
	prev  *Selector
}

// Kind returns the kind of this node's own fragment.
func (s *Selector) Kind() Kind { return s.kind }

// Value returns this node's raw fragment value.
func (s *Selector) Value() string { return s.value }

// Append validates value as a kind fragment against the whole chain
// and returns a new node extending s. The receiver is never modified.
func (s *Selector) Append(kind Kind, value string) (*Selector, error) {
	if kind.singleOccurrence() && s.HasAny(kind) {
		return nil, &DuplicateFragmentError{Kind: kind}
	}
	for p := s; p != nil; p = p.prev {
		if p.kind > kind {
			return nil, &OrderViolationError{Kind: kind, After: p.kind}
		}
	}
	return &Selector{kind: kind, value: value, prev: s}, nil
}

// Element appends an element (type) fragment.
func (s *Selector) Element(value string) (*Selector, error) {
	return s.Append(KindElement, value)
}

// ID appends an id fragment, rendered as #value.
func (s *Selector) ID(value string) (*Selector, error) {
	return s.Append(KindID, value)
}

// Class appends a class fragment, rendered as .value.
func (s *Selector) Class(value string) (*Selector, error) {
	return s.Append(KindClass, value)
}

// Attr appends an attribute fragment. The value is the bracket body
// supplied verbatim, e.g. `href$=".png"`.
func (s *Selector) Attr(value string) (*Selector, error) {
	return s.Append(KindAttribute, value)
}

// PseudoClass appends a pseudo-class fragment, rendered as :value.
func (s *Selector) PseudoClass(value string) (*Selector, error) {
	return s.Append(KindPseudoClass, value)
}

// PseudoElement appends a pseudo-element fragment, rendered as ::value.
func (s *Selector) PseudoElement(value string) (*Selector, error) {
	return s.Append(KindPseudoElement, value)
}

// HasAny reports whether any node in the chain, the receiver included,
// carries one of the given kinds.
func (s *Selector) HasAny(kinds ...Kind) bool {
	for p := s; p != nil; p = p.prev {
		for _, k := range kinds {
			if p.kind == k {
				return true
			}
		}
	}
	return false
}

// Render produces the selector text: the rendered prefix chain followed
// by this node's templated fragment, with no separator between
// fragments. Deterministic and safe to call repeatedly.
func (s *Selector) Render() string {
	if s.prev == nil {
		return s.kind.wrap(s.value)
	}
	return s.prev.Render() + s.kind.wrap(s.value)
}

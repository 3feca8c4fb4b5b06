package cssel

// Start begins a fresh selector chain with a single fragment. A first
// fragment can violate neither rule, so Start never fails; the named
// starters below delegate to it.
func Start(kind Kind, value string) *Selector {
	return &Selector{kind: kind, value: value}
}

// Element starts a selector with an element (type) fragment.
func Element(value string) *Selector { return Start(KindElement, value) }

// ID starts a selector with an id fragment.
func ID(value string) *Selector { return Start(KindID, value) }

// Class starts a selector with a class fragment.
func Class(value string) *Selector { return Start(KindClass, value) }

// Attr starts a selector with an attribute fragment.
func Attr(value string) *Selector { return Start(KindAttribute, value) }

// PseudoClass starts a selector with a pseudo-class fragment.
func PseudoClass(value string) *Selector { return Start(KindPseudoClass, value) }

// PseudoElement starts a selector with a pseudo-element fragment.
func PseudoElement(value string) *Selector { return Start(KindPseudoElement, value) }

// Combine joins two built selector trees under a combinator. No
// validation is performed beyond both sides being renderable.
func Combine(left Node, combinator string, right Node) *Combined {
	return &Combined{left: left, combinator: combinator, right: right}
}

// Must panics if err is non-nil and returns s otherwise. It wraps
// append calls whose validity is known at compile time, in the manner
// of template.Must:
//
//	s := cssel.Must(cssel.Element("div").ID("main"))
func Must(s *Selector, err error) *Selector {
	if err != nil {
		panic(err)
	}
	return s
}

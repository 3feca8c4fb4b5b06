package cssel

import "fmt"

// Kind identifies one variety of selector fragment. The declaration
// order is the CSS-mandated arrangement order within a compound
// selector and is relied upon by the ordering check.
type Kind int

// Fragment kinds, in arrangement order.
const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

var kindNames = map[Kind]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a manifest fragment key to its Kind. Both "attr" and
// "attribute" are accepted, matching the builder method name and the
// kind name respectively.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "element":
		return KindElement, nil
	case "id":
		return KindID, nil
	case "class":
		return KindClass, nil
	case "attr", "attribute":
		return KindAttribute, nil
	case "pseudo-class":
		return KindPseudoClass, nil
	case "pseudo-element":
		return KindPseudoElement, nil
	}
	return 0, fmt.Errorf("unknown fragment kind %q", name)
}

// wrap applies the kind's rendering template to a raw fragment value.
// Values are opaque; no CSS syntax validation happens here.
func (k Kind) wrap(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// singleOccurrence reports whether at most one fragment of this kind
// may appear per selector chain.
func (k Kind) singleOccurrence() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// Package cssel builds CSS selectors programmatically.
//
// Selectors are assembled fragment by fragment into immutable chains.
// Every append validates the CSS arrangement rules eagerly, so an
// invalid selector can never be constructed:
//
//	s, err := cssel.Element("div").ID("main")
//	if err != nil {
//		// duplicate or out-of-order fragment
//	}
//	s, err = s.Class("container")
//	s.Render() // "div#main.container"
//
// For chains known to be valid at compile time, Must mirrors
// template.Must:
//
//	s := cssel.Must(cssel.Must(cssel.Element("a").Attr(`href$=".png"`)).PseudoClass("focus"))
//	s.Render() // `a[href$=".png"]:focus`
//
// # Validation
//
// Two rules are enforced against the whole chain on every append:
//
//   - element, id and pseudo-element fragments may occur at most once
//     per selector (DuplicateFragmentError)
//   - fragments must be arranged element, id, class, attribute,
//     pseudo-class, pseudo-element (OrderViolationError)
//
// Nodes are never mutated, so a chain can be shared as a common prefix
// by any number of independent extensions.
//
// # Combining
//
// Combine joins two built selectors (compound or already combined)
// under a combinator symbol:
//
//	cssel.Combine(a, "+", b).Render() // "a.x + b.y"
//
// # CLI Tool
//
// cssel also provides a CLI that builds selectors from YAML manifests,
// checks them against authored stylesheets and generates Go constants.
// Install with:
//
//	go install github.com/yacobolo/cssel/cmd/cssel@latest
package cssel

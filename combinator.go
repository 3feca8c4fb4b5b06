package cssel

// Node is any renderable selector tree: a compound chain or a combined
// pair.
type Node interface {
	Render() string
}

// Combined joins two built selector trees under a combinator symbol.
// Both sides may themselves be Combined, so combinators nest
// arbitrarily. The combinator value is accepted opaquely; the usual
// symbols are " ", ">", "+" and "~".
type Combined struct {
	left       Node
	combinator string
	right      Node
}

// Render returns both sides with exactly one space on each side of the
// combinator. A space combinator therefore renders as three consecutive
// spaces, the descendant convention.
func (c *Combined) Render() string {
	return c.left.Render() + " " + c.combinator + " " + c.right.Render()
}

package mcdc

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Influence tells whether a condition can independently affect the
// outcome of the decision.
type Influence struct {
	Letter      byte
	Independent bool

	// For an independent condition, a test vector in which the condition
	// is true, such that flipping it flips the decision.
	// Of all such vectors, it is the numerically smallest.
	Vector TestVector
}

// Influence determines for each condition whether there is a pair of test
// vectors that differ only in that condition and lead to different
// outcomes of the decision. A condition for which there is no such pair
// cannot reach MC/DC, for example the 'b' in "a+ab".
func (t *Tree) Influence() []Influence {
	t.prepare()

	var result []Influence
	if len(t.nodes) == 0 {
		return result
	}
	for _, letter := range t.symbols.Letters() {
		result = append(result, t.influence(int(letter-'a')))
	}
	return result
}

func (t *Tree) influence(letter int) Influence {
	inf := Influence{Letter: byte('a' + letter)}

	c := logic.NewC()
	vars := map[int]z.Lit{}
	var others []int
	for _, l := range t.symbols.Letters() {
		if other := int(l - 'a'); other != letter {
			vars[other] = c.Lit()
			others = append(others, other)
		}
	}

	// The boolean difference: f(x=1) XOR f(x=0).
	vars[letter] = c.T
	hi := t.circuit(c, vars, t.Root())
	vars[letter] = c.F
	lo := t.circuit(c, vars, t.Root())
	diff := c.Or(c.And(hi, lo.Not()), c.And(hi.Not(), lo))

	if diff == c.F {
		return inf
	}
	if diff == c.T {
		inf.Independent = true
		inf.Vector = t.symbols.Mask(letter)
		return inf
	}

	g := gini.New()
	c.ToCnf(g)

	var fixed []z.Lit
	sat := func(extra ...z.Lit) bool {
		g.Assume(diff)
		for _, m := range fixed {
			g.Assume(m)
		}
		for _, m := range extra {
			g.Assume(m)
		}
		return g.Solve() == 1
	}
	if !sat() {
		return inf
	}

	inf.Independent = true
	inf.Vector = t.symbols.Mask(letter)

	// Fix the other conditions one after another, from the most
	// significant bit downwards, preferring false.
	for _, other := range others {
		m := vars[other]
		if sat(m.Not()) {
			fixed = append(fixed, m.Not())
		} else {
			fixed = append(fixed, m)
			inf.Vector |= t.symbols.Mask(other)
		}
	}
	return inf
}

// circuit translates the subtree to a logic circuit over the variables.
// Nodes that Evaluate treats as not evaluable become false.
func (t *Tree) circuit(c *logic.C, vars map[int]z.Lit, id int) z.Lit {
	n := &t.nodes[id]

	switch n.Children {
	case Leaf:
		switch n.Token {
		case ID:
			return vars[n.Letter]
		case IDNOT:
			return vars[n.Letter].Not()
		}

	case Unary:
		x := t.circuit(c, vars, n.Left)
		switch n.Token {
		case NOT:
			return x.Not()
		case BCLOSE, END:
			return x
		}

	case Binary:
		x := t.circuit(c, vars, n.Left)
		y := t.circuit(c, vars, n.Right)
		switch n.Token {
		case AND:
			return c.And(x, y)
		case OR:
			return c.Or(x, y)
		case XOR:
			return c.Or(c.And(x, y.Not()), c.And(x.Not(), y))
		}
	}
	return c.F
}

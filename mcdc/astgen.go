package mcdc

// ASTGenerator builds an abstract syntax tree from the reduce events of the
// parser. The Index of each reduced EXPR is the ID of its node.
type ASTGenerator struct {
	tree *Tree
}

// NewASTGenerator returns a generator for a tree with the given
// short-circuit setting.
func NewASTGenerator(shortCircuit bool) *ASTGenerator {
	return &ASTGenerator{&Tree{shortCircuit: shortCircuit}}
}

// Tree returns the tree, with its structural properties calculated.
func (g *ASTGenerator) Tree() *Tree {
	g.tree.prepare()
	return g.tree
}

func (g *ASTGenerator) Generate(p Production, handle ...Attr) Attr {
	switch len(handle) {
	case 1:
		return g.generate1(p, handle[0])
	case 2:
		return g.generate2(p, handle[0], handle[1])
	case 3:
		return g.generate3(p, handle[0], handle[1], handle[2])
	}
	return Attr{}
}

func (g *ASTGenerator) generate1(p Production, id Attr) Attr {
	if p.Operation != ID {
		return Attr{}
	}

	letter, negated := splitIndex(id.Index)
	tok := ID
	if negated {
		tok = IDNOT
	}
	symbol := id.Symbol
	if symbol == 0 {
		symbol = byte('a' + letter)
		if negated {
			symbol = byte('A' + letter)
		}
	}

	node := g.tree.add(Node{
		Token: tok, Children: Leaf, Left: NoNode, Right: NoNode,
		Letter: letter, Symbol: symbol,
	})
	g.tree.symbols.Record(symbol)

	return Attr{Token: EXPR, Index: node, Pos: id.Pos}
}

func (g *ASTGenerator) generate2(p Production, t1, t2 Attr) Attr {
	switch p.Operation {

	case NOT:
		node := g.tree.add(Node{Token: NOT, Children: Unary, Left: t1.Index, Right: NoNode})
		return Attr{Token: EXPR, Index: node, Pos: t2.Pos}

	case AND:
		// Concatenation: t2 is the left operand, t1 the right one.
		node := g.tree.add(Node{Token: AND, Children: Binary, Left: t2.Index, Right: t1.Index})
		return Attr{Token: EXPR, Index: node, Pos: t2.Pos}

	case END:
		g.tree.calculateProperties()
		return Attr{Token: END, Index: NoNode, Pos: t1.Pos}
	}
	return Attr{}
}

func (g *ASTGenerator) generate3(p Production, t1, t2, t3 Attr) Attr {
	switch p.Operation {

	case BCLOSE:
		return Attr{Token: EXPR, Index: t2.Index, Pos: t3.Pos}

	case OR, AND, XOR:
		// The grammar is left associative, so t3 is the left operand.
		node := g.tree.add(Node{Token: p.Operation, Children: Binary, Left: t3.Index, Right: t1.Index})
		return Attr{Token: EXPR, Index: node, Pos: t3.Pos}
	}
	return Attr{}
}

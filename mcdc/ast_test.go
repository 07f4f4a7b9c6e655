package mcdc

import (
	"gopkg.in/check.v1"
)

func (s *Suite) Test_Tree_Evaluate__or(c *check.C) {
	tree := s.buildTree(c, "a+b", true)

	tree.Evaluate(vector(tree, "b"))
	c.Check(tree.Value(), check.Equals, true)

	tree.Evaluate(vector(tree, ""))
	c.Check(tree.Value(), check.Equals, false)
}

func (s *Suite) Test_Tree_Evaluate__and_short_circuit(c *check.C) {
	tree := s.buildTree(c, "a*b", true)
	b := leaf(tree, 'b')

	tree.Evaluate(vector(tree, "b"))
	c.Check(tree.Value(), check.Equals, false)
	c.Check(tree.Node(b).NotEvaluated, check.Equals, true)
	c.Check(tree.Node(b).Value, check.Equals, true)

	tree.Evaluate(vector(tree, "ab"))
	c.Check(tree.Value(), check.Equals, true)
	c.Check(tree.Node(leaf(tree, 'a')).NotEvaluated, check.Equals, false)
	c.Check(tree.Node(b).NotEvaluated, check.Equals, false)
}

func (s *Suite) Test_Tree_Evaluate__or_short_circuit(c *check.C) {
	tree := s.buildTree(c, "a+b", true)
	b := leaf(tree, 'b')

	tree.Evaluate(vector(tree, "a"))
	c.Check(tree.Value(), check.Equals, true)
	c.Check(tree.Node(b).NotEvaluated, check.Equals, true)

	tree.SetShortCircuit(false)
	tree.Evaluate(vector(tree, "a"))
	c.Check(tree.Value(), check.Equals, true)
	c.Check(tree.Node(b).NotEvaluated, check.Equals, false)
}

// XOR always needs both operands.
func (s *Suite) Test_Tree_Evaluate__xor(c *check.C) {
	tree := s.buildTree(c, "a^b", true)

	for v := TestVector(0); v < 4; v++ {
		tree.Evaluate(v)
		c.Check(tree.Value(), check.Equals, v == 1 || v == 2)
		for _, r := range tree.Results() {
			c.Check(r.NotEvaluated, check.Equals, false)
		}
	}
}

func (s *Suite) Test_Tree_Evaluate__negation(c *check.C) {
	tree := s.buildTree(c, "!a^B", false)

	tree.Evaluate(vector(tree, "a"))
	c.Check(tree.Node(leaf(tree, 'a')).Value, check.Equals, true)
	c.Check(tree.Node(leaf(tree, 'b')).Value, check.Equals, true)
	c.Check(tree.Value(), check.Equals, true)

	tree.Evaluate(vector(tree, "b"))
	c.Check(tree.Node(leaf(tree, 'b')).Value, check.Equals, false)
	c.Check(tree.Value(), check.Equals, true)

	tree.Evaluate(vector(tree, "ab"))
	c.Check(tree.Value(), check.Equals, false)
}

// When the left operand of an AND is false, the whole right subtree is
// marked, but its values are still computed.
func (s *Suite) Test_Tree_Evaluate__masked_subtree(c *check.C) {
	tree := s.buildTree(c, "a(b+!c)", true)

	tree.Evaluate(vector(tree, "b"))

	c.Check(tree.Results(), check.DeepEquals, []Result{
		{0, false, false}, // a
		{1, true, true},   // b
		{2, false, true},  // c
		{3, true, true},   // !c
		{4, true, true},   // b+!c
		{5, false, false}, // a(b+!c)
	})
}

// Only the right operand is masked, even if the left operand contains
// short-circuited operators itself.
func (s *Suite) Test_Tree_Evaluate__nested(c *check.C) {
	tree := s.buildTree(c, "(a+b)+c", true)

	tree.Evaluate(vector(tree, "a"))

	c.Check(tree.Node(leaf(tree, 'a')).NotEvaluated, check.Equals, false)
	c.Check(tree.Node(leaf(tree, 'b')).NotEvaluated, check.Equals, true)
	c.Check(tree.Node(2).NotEvaluated, check.Equals, false)
	c.Check(tree.Node(leaf(tree, 'c')).NotEvaluated, check.Equals, true)
	c.Check(tree.Value(), check.Equals, true)
}

// Each evaluation starts from scratch.
func (s *Suite) Test_Tree_Evaluate__no_stale_flags(c *check.C) {
	tree := s.buildTree(c, "a(b+c)", true)

	tree.Evaluate(vector(tree, ""))
	var masked int
	for _, r := range tree.Results() {
		if r.NotEvaluated {
			masked++
		}
	}
	c.Check(masked, check.Equals, 3)

	tree.Evaluate(vector(tree, "ac"))
	c.Check(tree.Results(), check.DeepEquals, []Result{
		{0, true, false},
		{1, false, false},
		{2, true, false},
		{3, true, false},
		{4, true, false},
	})
}

// Tokens that don't fit the shape of the node are not evaluated.
func (s *Suite) Test_Tree_Evaluate__unknown_token(c *check.C) {
	var tree Tree
	tree.add(Node{Token: XOR, Children: Leaf, Left: NoNode, Right: NoNode})
	tree.add(Node{Token: ID, Children: Leaf, Letter: 1, Symbol: 'b', Left: NoNode, Right: NoNode})
	tree.add(Node{Token: AND, Children: Unary, Left: 1, Right: NoNode})
	tree.add(Node{Token: END, Children: Unary, Left: 2, Right: NoNode})
	tree.add(Node{Token: NOT, Children: Binary, Left: 0, Right: 3})
	tree.symbols.Record('b')

	tree.Evaluate(1)

	c.Check(tree.Results(), check.DeepEquals, []Result{
		{0, false, true},
		{1, true, false},
		{2, false, true},
		{3, false, false},
		{4, false, true},
	})
}

func (s *Suite) Test_Tree_Evaluate__empty(c *check.C) {
	var tree Tree

	tree.Evaluate(0)

	c.Check(tree.Len(), check.Equals, 0)
	c.Check(tree.Root(), check.Equals, NoNode)
	c.Check(tree.Value(), check.Equals, false)
	c.Check(tree.Results(), check.HasLen, 0)
}

func (s *Suite) Test_Tree_calculateProperties(c *check.C) {
	tree := s.buildTree(c, "!((a+b)(c+d))", false)

	type props struct {
		Level, PrintRow, Parent int
	}
	var actual []props
	for _, n := range tree.Nodes() {
		actual = append(actual, props{n.Level, n.PrintRow, n.Parent})
	}

	c.Check(actual, check.DeepEquals, []props{
		{3, 0, 2}, // a
		{3, 2, 2}, // b
		{2, 1, 6}, // a+b
		{3, 4, 5}, // c
		{3, 6, 5}, // d
		{2, 5, 6}, // c+d
		{1, 3, 7}, // (a+b)(c+d)
		{0, 4, NoNode},
	})
}

// A tree that is built event by event without END gets its properties
// on first use.
func (s *Suite) Test_Tree_prepare__lazy(c *check.C) {
	gen := NewASTGenerator(false)
	x := gen.Generate(ProdID, Attr{Token: ID, Index: 23, Symbol: 'x'})
	y := gen.Generate(ProdID, Attr{Token: ID, Index: 24, Symbol: 'y'})
	gen.Generate(ProdXor, y, Attr{Token: XOR}, x)

	tree := gen.tree
	c.Check(tree.prepared, check.Equals, false)

	tree.Evaluate(1)

	c.Check(tree.prepared, check.Equals, true)
	c.Check(tree.Node(0).Mask, check.Equals, TestVector(2))
	c.Check(tree.Value(), check.Equals, true)
}

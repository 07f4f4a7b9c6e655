package mcdc

// ChildCount determines which of the child references of a node are
// meaningful, and thereby how the node is evaluated and printed.
type ChildCount int

const (
	Leaf   ChildCount = iota // a condition
	Unary                    // NOT
	Binary                   // AND, OR, XOR
)

// Node is an element of the abstract syntax tree.
//
// Nodes refer to each other by their index in the tree. Since the tree is
// built bottom-up, the children of a node always have smaller IDs than the
// node itself.
type Node struct {
	ID       int
	Token    Token
	Children ChildCount
	Left     int // the only child of a Unary node
	Right    int
	Parent   int

	Letter int  // for leaves, the letter index 0 to 25
	Symbol byte // for leaves, the letter as written in the source
	Mask   TestVector

	Level    int // depth, the root having level 0
	PrintRow int

	Value        bool
	NotEvaluated bool // skipped by short-circuit evaluation
}

// Tree is an abstract syntax tree for a boolean expression, stored as a
// slice of nodes. The last node is the root.
//
// The structural properties of the nodes (level, parent, print row and
// mask) are calculated once the tree is complete. Evaluate then computes
// the value of each node for a test vector.
type Tree struct {
	nodes        []Node
	symbols      SymbolTable
	shortCircuit bool
	prepared     bool
}

// add appends the node and returns its ID.
func (t *Tree) add(n Node) int {
	n.ID = len(t.nodes)
	n.Parent = NoNode
	t.nodes = append(t.nodes, n)
	t.prepared = false
	return n.ID
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the ID of the root node, or NoNode for an empty tree.
func (t *Tree) Root() int { return len(t.nodes) - 1 }

// Node returns a copy of the node.
func (t *Tree) Node(id int) Node {
	t.prepare()
	return t.nodes[id]
}

// Nodes returns a copy of all nodes, indexed by their ID.
func (t *Tree) Nodes() []Node {
	t.prepare()
	return append([]Node(nil), t.nodes...)
}

// Symbols returns the compacted symbol table of the expression.
func (t *Tree) Symbols() *SymbolTable {
	t.prepare()
	return &t.symbols
}

// ShortCircuit reports whether Evaluate marks the operands that are
// skipped by short-circuit evaluation.
func (t *Tree) ShortCircuit() bool { return t.shortCircuit }

func (t *Tree) SetShortCircuit(on bool) { t.shortCircuit = on }

func (t *Tree) prepare() {
	if !t.prepared {
		t.calculateProperties()
	}
}

// calculateProperties determines the level, parent, print row and mask
// of each node reachable from the root.
func (t *Tree) calculateProperties() {
	t.symbols.Compact()
	t.prepared = true

	if len(t.nodes) == 0 {
		return
	}
	for i := range t.nodes {
		t.nodes[i].Parent = NoNode
	}

	row := 0
	t.calculatePropertiesRecursive(t.Root(), 0, &row)
}

func (t *Tree) calculatePropertiesRecursive(id int, level int, row *int) {
	n := &t.nodes[id]
	n.Level = level

	switch n.Children {
	case Leaf:
		n.Mask = t.symbols.Mask(n.Letter)
		n.PrintRow = *row
		// Leave an empty row between two leaves.
		*row += 2

	case Unary:
		t.nodes[n.Left].Parent = id
		t.calculatePropertiesRecursive(n.Left, level+1, row)
		n.PrintRow = t.nodes[n.Left].PrintRow + 1

	case Binary:
		t.nodes[n.Left].Parent = id
		t.nodes[n.Right].Parent = id
		t.calculatePropertiesRecursive(n.Left, level+1, row)
		t.calculatePropertiesRecursive(n.Right, level+1, row)
		n.PrintRow = (t.nodes[n.Left].PrintRow + t.nodes[n.Right].PrintRow) / 2
	}
}

// Evaluate computes the value of each node for the test vector.
// It overwrites the results of previous evaluations.
//
// If short-circuit tracking is on, the right operand of an AND whose left
// operand is false, and of an OR whose left operand is true, is marked as
// not evaluated, together with its whole subtree. The values of these
// nodes are still computed.
func (t *Tree) Evaluate(v TestVector) {
	t.prepare()

	for i := range t.nodes {
		t.nodes[i].Value = false
		t.nodes[i].NotEvaluated = false
	}
	if len(t.nodes) > 0 {
		t.evaluateRecursive(t.Root(), v)
	}
}

func (t *Tree) evaluateRecursive(id int, v TestVector) {
	n := &t.nodes[id]
	n.NotEvaluated = false

	switch n.Children {
	case Leaf:
		switch n.Token {
		case ID:
			n.Value = v&n.Mask != 0
		case IDNOT:
			n.Value = v&n.Mask == 0
		default:
			n.Value, n.NotEvaluated = false, true
		}

	case Unary:
		t.evaluateRecursive(n.Left, v)
		x := t.nodes[n.Left].Value
		switch n.Token {
		case NOT:
			n.Value = !x
		case BCLOSE, END:
			n.Value = x
		default:
			n.Value, n.NotEvaluated = false, true
		}

	case Binary:
		t.evaluateRecursive(n.Left, v)
		t.evaluateRecursive(n.Right, v)
		x, y := t.nodes[n.Left].Value, t.nodes[n.Right].Value
		switch n.Token {
		case AND:
			n.Value = x && y
		case OR:
			n.Value = x || y
		case XOR:
			n.Value = x != y
		default:
			n.Value, n.NotEvaluated = false, true
		}

		if t.shortCircuit && t.isShortCircuited(n) {
			t.mask(n.Right)
		}
	}
}

// isShortCircuited reports whether the value of the binary node is
// determined by its left operand alone.
func (t *Tree) isShortCircuited(n *Node) bool {
	left := t.nodes[n.Left].Value
	return n.Token == AND && !left || n.Token == OR && left
}

// mask marks the subtree as not evaluated.
func (t *Tree) mask(id int) {
	n := &t.nodes[id]
	n.NotEvaluated = true
	switch n.Children {
	case Unary:
		t.mask(n.Left)
	case Binary:
		t.mask(n.Left)
		t.mask(n.Right)
	}
}

// Result is the outcome of the last evaluation for a single node.
type Result struct {
	ID           int
	Value        bool
	NotEvaluated bool
}

// Results returns the outcome of the last evaluation, indexed by node ID.
func (t *Tree) Results() []Result {
	results := make([]Result, len(t.nodes))
	for i, n := range t.nodes {
		results[i] = Result{n.ID, n.Value, n.NotEvaluated}
	}
	return results
}

// Value returns the value of the root node from the last evaluation.
func (t *Tree) Value() bool {
	return len(t.nodes) > 0 && t.nodes[t.Root()].Value
}

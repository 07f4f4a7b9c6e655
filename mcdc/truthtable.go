package mcdc

import "fmt"

// MaxTableSymbols limits the number of conditions for which a complete
// truth table is generated.
const MaxTableSymbols = 16

// Row is the evaluation of a tree for a single test vector.
type Row struct {
	Vector TestVector
	Value  bool
	Masked string   // the letters of the leaves that were not evaluated
	Nodes  []Result `json:",omitempty"`
}

// Row evaluates the tree for the test vector and summarizes the result.
func (t *Tree) Row(v TestVector, withNodes bool) Row {
	t.Evaluate(v)

	row := Row{Vector: v, Value: t.Value()}

	var masked [alphabetSize]bool
	for _, n := range t.nodes {
		if n.Children == Leaf && n.NotEvaluated {
			masked[n.Letter] = true
		}
	}
	for letter, m := range masked {
		if m {
			row.Masked += string(rune('a' + letter))
		}
	}

	if withNodes {
		row.Nodes = t.Results()
	}
	return row
}

// TruthTable evaluates the tree for all test vectors, in ascending order.
// Afterwards, the tree holds the evaluation of the last test vector.
func (t *Tree) TruthTable(withNodes bool) ([]Row, error) {
	n := t.Symbols().Len()
	if n > MaxTableSymbols {
		return nil, fmt.Errorf("a truth table for %d conditions is too large, the limit is %d", n, MaxTableSymbols)
	}

	rows := make([]Row, 0, 1<<uint(n))
	for v := TestVector(0); v < 1<<uint(n); v++ {
		rows = append(rows, t.Row(v, withNodes))
	}
	return rows, nil
}

package mcdc

import (
	"fmt"
	"io"
	"strings"

	"github.com/disiqueira/gotree"
)

const (
	printTab   = 11   // columns per level
	printWidth = 1000 // maximum columns of a row
)

// Fprint writes the tree, rotated by 90 degrees counterclockwise, so that
// the root is in the leftmost column and the leaves are on the right.
//
// Each row starts with its row number. Operators refer to the rows of
// their operands, for example "!((a+b)(c+d))" is printed as:
//
//	     0                                  ID a (0)
//	     1                       OR 0,2 (0)
//	     2                                  ID b (0)
//	     3            AND 1,5 (0)
//	     4 NOT 3 (0)                        ID c (0)
//	     5                       OR 4,6 (0)
//	     6                                  ID d (0)
//
// The value of each node is in parentheses, followed by an 'x' if the node
// was not evaluated due to short-circuit evaluation.
//
// Labels that would reach the last column of the maximum width are left out.
// Fprint returns how many labels it left out.
func (t *Tree) Fprint(w io.Writer) (dropped int, err error) {
	t.prepare()

	maxRow := -1
	for _, n := range t.nodes {
		if n.PrintRow > maxRow {
			maxRow = n.PrintRow
		}
	}

	var buf [printWidth]byte
	for row := 0; row <= maxRow; row++ {
		for i := range buf {
			buf[i] = ' '
		}

		end := 0
		for i := range t.nodes {
			n := &t.nodes[i]
			if n.PrintRow != row {
				continue
			}

			label := t.label(n)
			col := printTab * n.Level
			if col+len(label)+1 >= printWidth {
				dropped++
				continue
			}
			copy(buf[col:], label)
			if col+len(label) > end {
				end = col + len(label)
			}
		}

		if end == 0 {
			_, err = fmt.Fprintf(w, "%6d\n", row)
		} else {
			_, err = fmt.Fprintf(w, "%6d %s\n", row, buf[:end])
		}
		if err != nil {
			return
		}
	}
	return
}

// String returns the printed tree, without any labels left out.
func (t *Tree) String() string {
	var sb strings.Builder
	_, _ = t.Fprint(&sb)
	return sb.String()
}

// label returns the text of the node for Fprint, such as "ID a (1)",
// "NOT 3 (0)" or "OR 0,2 (1x)".
func (t *Tree) label(n *Node) string {
	var sb strings.Builder

	switch n.Children {
	case Leaf:
		_, _ = fmt.Fprintf(&sb, "%s %c", n.Token, n.Symbol)
	case Unary:
		_, _ = fmt.Fprintf(&sb, "%s %d", n.Token, t.nodes[n.Left].PrintRow)
	case Binary:
		_, _ = fmt.Fprintf(&sb, "%s %d,%d", n.Token,
			t.nodes[n.Left].PrintRow, t.nodes[n.Right].PrintRow)
	}

	sb.WriteString(" (")
	sb.WriteString(valueText(n))
	sb.WriteString(")")
	return sb.String()
}

func valueText(n *Node) string {
	text := "0"
	if n.Value {
		text = "1"
	}
	if n.NotEvaluated {
		text += "x"
	}
	return text
}

// Outline returns the tree in the conventional top-down form,
// one node per line, the children indented below their parent.
func (t *Tree) Outline() string {
	t.prepare()
	if len(t.nodes) == 0 {
		return ""
	}

	root := gotree.New(t.outlineLabel(t.Root()))
	t.outline(root, t.Root())
	return root.Print()
}

func (t *Tree) outline(parent gotree.Tree, id int) {
	n := &t.nodes[id]
	switch n.Children {
	case Unary:
		t.outline(parent.Add(t.outlineLabel(n.Left)), n.Left)
	case Binary:
		t.outline(parent.Add(t.outlineLabel(n.Left)), n.Left)
		t.outline(parent.Add(t.outlineLabel(n.Right)), n.Right)
	}
}

func (t *Tree) outlineLabel(id int) string {
	n := &t.nodes[id]
	if n.Children == Leaf {
		return fmt.Sprintf("%s %c (%s)", n.Token, n.Symbol, valueText(n))
	}
	return fmt.Sprintf("%s (%s)", n.Token, valueText(n))
}

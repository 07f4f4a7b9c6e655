package mcdc

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Instruction is a three-address instruction of the virtual machine.
//
// For ID and IDNOT, Src1 is the letter index 0 to 25 of the condition,
// not a register. Unused operands are NoNode.
type Instruction struct {
	Op     Token
	Src1   int
	Src2   int
	Dst    int
	Symbol byte // the lowercase letter, for ID and IDNOT
}

func (in Instruction) String() string {
	switch in.Op {
	case ID, IDNOT:
		return fmt.Sprintf("%-6s %c -> r%d", in.Op, in.Symbol, in.Dst)
	case NOT:
		return fmt.Sprintf("%-6s r%d -> r%d", in.Op, in.Src1, in.Dst)
	case AND, OR, XOR:
		return fmt.Sprintf("%-6s r%d, r%d -> r%d", in.Op, in.Src1, in.Src2, in.Dst)
	case END:
		return fmt.Sprintf("%-6s r%d", in.Op, in.Src1)
	}
	return in.Op.String()
}

// ObjectCode is the unit that the virtual machine loads and runs:
// the instructions together with the symbol table.
type ObjectCode struct {
	ID      uuid.UUID
	Code    []Instruction
	Symbols SymbolTable
}

// NewObjectCode returns empty object code with a fresh ID.
func NewObjectCode() *ObjectCode {
	return &ObjectCode{ID: uuid.New()}
}

// Add appends the instruction.
func (oc *ObjectCode) Add(in Instruction) {
	oc.Code = append(oc.Code, in)
}

// Registers returns the number of registers that the code writes to.
func (oc *ObjectCode) Registers() int {
	n := 0
	for _, in := range oc.Code {
		if in.Dst >= n {
			n = in.Dst + 1
		}
	}
	return n
}

// String returns the listing of the code, one numbered instruction per
// line.
func (oc *ObjectCode) String() string {
	var sb strings.Builder
	for i, in := range oc.Code {
		_, _ = fmt.Fprintf(&sb, "%4d  %s\n", i, in)
	}
	return sb.String()
}

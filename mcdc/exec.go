package mcdc

import "fmt"

// Execute runs the object code for the test vector and returns the value
// of the expression, as the virtual machine would.
func (oc *ObjectCode) Execute(v TestVector) (bool, error) {
	oc.Symbols.Compact()

	n := oc.Registers()
	regs := make([]bool, n)
	written := make([]bool, n)

	load := func(pc, reg int) (bool, error) {
		if reg < 0 || reg >= n || !written[reg] {
			return false, fmt.Errorf("instruction %d reads undefined register r%d", pc, reg)
		}
		return regs[reg], nil
	}
	store := func(reg int, value bool) {
		regs[reg] = value
		written[reg] = true
	}

	for pc, in := range oc.Code {
		if in.Op != END && in.Dst < 0 {
			return false, fmt.Errorf("instruction %d has no destination register", pc)
		}

		switch in.Op {

		case ID:
			store(in.Dst, v&oc.Symbols.Mask(in.Src1) != 0)

		case IDNOT:
			store(in.Dst, v&oc.Symbols.Mask(in.Src1) == 0)

		case NOT:
			x, err := load(pc, in.Src1)
			if err != nil {
				return false, err
			}
			store(in.Dst, !x)

		case AND, OR, XOR:
			x, err := load(pc, in.Src1)
			if err != nil {
				return false, err
			}
			y, err := load(pc, in.Src2)
			if err != nil {
				return false, err
			}
			switch in.Op {
			case AND:
				store(in.Dst, x && y)
			case OR:
				store(in.Dst, x || y)
			default:
				store(in.Dst, x != y)
			}

		case END:
			return load(pc, in.Src1)

		default:
			return false, fmt.Errorf("instruction %d has unknown operation %s", pc, in.Op)
		}
	}
	return false, fmt.Errorf("object code has no %s instruction", END)
}

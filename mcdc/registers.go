package mcdc

// registerFile hands out the registers of the virtual machine that hold
// the partial results of an expression.
//
// A register is released as soon as the instruction that consumes it has
// been generated, so the number of registers is bounded by the depth of
// the parse stack, not by the length of the expression.
type registerFile struct {
	free  []bool
	stray int // releases of registers that were never acquired
}

// acquire returns the lowest free register, or a new one.
func (rf *registerFile) acquire() int {
	for i, free := range rf.free {
		if free {
			rf.free[i] = false
			return i
		}
	}
	rf.free = append(rf.free, false)
	return len(rf.free) - 1
}

// release makes the register available again.
// Registers outside the file are ignored, but counted.
func (rf *registerFile) release(reg int) {
	if reg < 0 || reg >= len(rf.free) {
		rf.stray++
		return
	}
	rf.free[reg] = true
}

func (rf *registerFile) size() int { return len(rf.free) }

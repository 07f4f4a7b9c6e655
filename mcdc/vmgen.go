package mcdc

// VMGenerator generates the object code for the virtual machine from the
// reduce events of the parser.
type VMGenerator struct {
	code *ObjectCode
	regs registerFile
}

// NewVMGenerator returns a generator that starts with empty object code.
func NewVMGenerator() *VMGenerator {
	return &VMGenerator{code: NewObjectCode()}
}

// ObjectCode returns the code generated so far.
func (g *VMGenerator) ObjectCode() *ObjectCode { return g.code }

// StrayReleases returns how often a register outside the register file
// has been released. A nonzero count means that the reduce events
// referred to registers that the generator never handed out.
func (g *VMGenerator) StrayReleases() int { return g.regs.stray }

func (g *VMGenerator) Generate(p Production, handle ...Attr) Attr {
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

func (g *VMGenerator) generate1(p Production, id Attr) Attr {
	if p.Operation != ID {
		return Attr{}
	}

	letter, negated := splitIndex(id.Index)
	op := ID
	if negated {
		op = IDNOT
	}
	symbol := byte('a' + letter)

	dst := g.regs.acquire()
	g.code.Add(Instruction{op, letter, NoNode, dst, symbol})
	g.code.Symbols.Record(symbol)

	return Attr{Token: EXPR, Index: dst, Pos: id.Pos}
}

func (g *VMGenerator) generate2(p Production, t1, t2 Attr) Attr {
	switch p.Operation {

	case NOT:
		dst := g.regs.acquire()
		g.regs.release(t1.Index)
		g.code.Add(Instruction{NOT, t1.Index, NoNode, dst, 0})
		return Attr{Token: EXPR, Index: dst, Pos: t2.Pos}

	case AND:
		// Concatenation: t2 is the left operand, t1 the right one.
		dst := g.regs.acquire()
		g.regs.release(t2.Index)
		g.regs.release(t1.Index)
		g.code.Add(Instruction{AND, t2.Index, t1.Index, dst, 0})
		return Attr{Token: EXPR, Index: dst, Pos: t2.Pos}

	case END:
		g.regs.release(t2.Index)
		g.code.Add(Instruction{END, t2.Index, NoNode, NoNode, 0})
		g.code.Symbols.Compact()
		return Attr{Token: END, Index: NoNode, Pos: t1.Pos}
	}
	return Attr{}
}

func (g *VMGenerator) generate3(p Production, t1, t2, t3 Attr) Attr {
	switch p.Operation {

	case BCLOSE:
		return Attr{Token: EXPR, Index: t2.Index, Pos: t3.Pos}

	case OR, AND, XOR:
		// The grammar is left associative, so t3 is the left operand.
		dst := g.regs.acquire()
		g.regs.release(t3.Index)
		g.regs.release(t1.Index)
		g.code.Add(Instruction{p.Operation, t3.Index, t1.Index, dst, 0})
		return Attr{Token: EXPR, Index: dst, Pos: t3.Pos}
	}
	return Attr{}
}

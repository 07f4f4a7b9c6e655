package mcdc

import "fmt"

// MaxDepth limits the nesting of parentheses and negations while parsing,
// as well as the number of levels of the resulting tree, which bounds the
// recursion when the tree is processed.
const MaxDepth = 1000

// Compile parses the source and passes each reduce event to the generator.
//
// The grammar, from the lowest to the highest precedence:
//
//	start   -> or END
//	or      -> or OR xor | xor
//	xor     -> xor XOR and | and
//	and     -> and AND unary | and unary | unary
//	unary   -> NOT unary | primary
//	primary -> ID | BOPEN or BCLOSE
//
// The events arrive in the same order as from a shift-reduce parser,
// each handle listing the rightmost symbol first.
func Compile(src string, gen CodeGenerator) error {
	p := parser{scanner: NewScanner(src), gen: gen}
	if err := p.next(); err != nil {
		return err
	}

	expr, err := p.parseOr()
	if err != nil {
		return err
	}
	if p.tok.Token != END {
		return p.unexpected()
	}

	p.gen.Generate(ProdEnd, p.tok, expr.Attr)
	return nil
}

// BuildTree compiles the source to an abstract syntax tree.
func BuildTree(src string, shortCircuit bool) (*Tree, error) {
	gen := NewASTGenerator(shortCircuit)
	if err := Compile(src, gen); err != nil {
		return nil, err
	}
	return gen.Tree(), nil
}

// BuildObjectCode compiles the source to code for the virtual machine.
func BuildObjectCode(src string) (*ObjectCode, error) {
	gen := NewVMGenerator()
	if err := Compile(src, gen); err != nil {
		return nil, err
	}
	return gen.ObjectCode(), nil
}

type parser struct {
	scanner *Scanner
	gen     CodeGenerator
	tok     Attr // the lookahead
	depth   int
}

func (p *parser) next() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected() error {
	if p.tok.Token == END {
		return &SyntaxError{p.tok.Pos, "unexpected end of expression"}
	}
	return &SyntaxError{p.tok.Pos, fmt.Sprintf("unexpected %q", p.tok.Symbol)}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return &SyntaxError{p.tok.Pos, fmt.Sprintf("expression is nested deeper than %d levels", MaxDepth)}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// An operand is a reduced expression together with its height, the
// number of levels of the tree below it.
type operand struct {
	Attr
	height int
}

// combine returns the height of an operator node over the operands.
func (p *parser) combine(pos int, operands ...operand) (int, error) {
	height := 0
	for _, o := range operands {
		if o.height >= height {
			height = o.height + 1
		}
	}
	if height > MaxDepth {
		return 0, &SyntaxError{pos, fmt.Sprintf("expression is nested deeper than %d levels", MaxDepth)}
	}
	return height, nil
}

func (p *parser) parseOr() (operand, error) {
	return p.parseBinary(OR, ProdOr, p.parseXor)
}

func (p *parser) parseXor() (operand, error) {
	return p.parseBinary(XOR, ProdXor, p.parseAnd)
}

// parseBinary parses a left-associative chain of the operator op.
func (p *parser) parseBinary(op Token, prod Production, parseOperand func() (operand, error)) (operand, error) {
	left, err := parseOperand()
	if err != nil {
		return operand{}, err
	}

	for p.tok.Token == op {
		opTok := p.tok
		if err := p.next(); err != nil {
			return operand{}, err
		}
		right, err := parseOperand()
		if err != nil {
			return operand{}, err
		}
		height, err := p.combine(opTok.Pos, left, right)
		if err != nil {
			return operand{}, err
		}
		left = operand{p.gen.Generate(prod, right.Attr, opTok, left.Attr), height}
	}
	return left, nil
}

func (p *parser) parseAnd() (operand, error) {
	left, err := p.parseUnary()
	if err != nil {
		return operand{}, err
	}

	for {
		switch p.tok.Token {

		case AND:
			opTok := p.tok
			if err := p.next(); err != nil {
				return operand{}, err
			}
			right, err := p.parseUnary()
			if err != nil {
				return operand{}, err
			}
			height, err := p.combine(opTok.Pos, left, right)
			if err != nil {
				return operand{}, err
			}
			left = operand{p.gen.Generate(ProdAnd, right.Attr, opTok, left.Attr), height}

		case ID, NOT, BOPEN:
			// Juxtaposition, as in "ab" or "(a+b)(c+d)".
			pos := p.tok.Pos
			right, err := p.parseUnary()
			if err != nil {
				return operand{}, err
			}
			height, err := p.combine(pos, left, right)
			if err != nil {
				return operand{}, err
			}
			left = operand{p.gen.Generate(ProdConcat, right.Attr, left.Attr), height}

		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (operand, error) {
	if p.tok.Token != NOT {
		return p.parsePrimary()
	}

	if err := p.enter(); err != nil {
		return operand{}, err
	}
	defer p.leave()

	opTok := p.tok
	if err := p.next(); err != nil {
		return operand{}, err
	}
	arg, err := p.parseUnary()
	if err != nil {
		return operand{}, err
	}
	height, err := p.combine(opTok.Pos, arg)
	if err != nil {
		return operand{}, err
	}
	return operand{p.gen.Generate(ProdNot, arg.Attr, opTok), height}, nil
}

func (p *parser) parsePrimary() (operand, error) {
	switch p.tok.Token {

	case ID:
		id := p.tok
		if err := p.next(); err != nil {
			return operand{}, err
		}
		return operand{p.gen.Generate(ProdID, id), 0}, nil

	case BOPEN:
		if err := p.enter(); err != nil {
			return operand{}, err
		}
		defer p.leave()

		open := p.tok
		if err := p.next(); err != nil {
			return operand{}, err
		}
		inner, err := p.parseOr()
		if err != nil {
			return operand{}, err
		}
		if p.tok.Token != BCLOSE {
			if p.tok.Token == END {
				return operand{}, &SyntaxError{open.Pos, "unclosed parenthesis"}
			}
			return operand{}, p.unexpected()
		}
		closing := p.tok
		if err := p.next(); err != nil {
			return operand{}, err
		}
		return operand{p.gen.Generate(ProdParen, closing, inner.Attr, open), inner.height}, nil
	}

	return operand{}, p.unexpected()
}

package mcdc

import "fmt"

// Token is the kind of a terminal or non-terminal symbol of the grammar
// for boolean expressions.
type Token int

const (
	ILLEGAL Token = iota

	ID    // a condition, either positive or negated, as scanned
	IDNOT // a negated condition, after code generation
	NOT
	AND
	OR
	XOR
	BOPEN
	BCLOSE
	END

	EXPR // the non-terminal for a reduced expression
)

var tokenNames = [...]string{
	ILLEGAL: "ILLEGAL",
	ID:      "ID",
	IDNOT:   "IDNOT",
	NOT:     "NOT",
	AND:     "AND",
	OR:      "OR",
	XOR:     "XOR",
	BOPEN:   "BOPEN",
	BCLOSE:  "BCLOSE",
	END:     "END",
	EXPR:    "EXPR",
}

func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// NoNode is the reference of a result that has no register and no node,
// such as the reduced END.
const NoNode = -1

// alphabetSize is the number of distinct condition letters. Source indexes
// range over twice that, the uppercase letters being the negated ones.
const alphabetSize = 26

// Attr is a token together with its attribute.
//
// For a scanned ID, Index is the source index: 0 to 25 for 'a' to 'z',
// 26 to 51 for the negated 'A' to 'Z'. For a reduced EXPR, Index is the
// register or the node in which the code generator keeps the partial
// result.
type Attr struct {
	Token  Token
	Index  int
	Symbol byte // the letter as written in the source
	Pos    int  // byte offset in the source
}

// Production names the grammar rule that triggered a reduce event and the
// operation that it implies.
type Production struct {
	Name      string
	Operation Token
}

// The fixed productions of the grammar.
// The handles are passed to the code generators in parse stack order,
// that is, the rightmost symbol first.
var (
	ProdID     = Production{"primary -> ID", ID}
	ProdParen  = Production{"primary -> BOPEN or BCLOSE", BCLOSE}
	ProdNot    = Production{"unary -> NOT unary", NOT}
	ProdAnd    = Production{"and -> and AND unary", AND}
	ProdConcat = Production{"and -> and unary", AND}
	ProdXor    = Production{"xor -> xor XOR and", XOR}
	ProdOr     = Production{"or -> or OR xor", OR}
	ProdEnd    = Production{"start -> or END", END}
)

// splitIndex splits a source index into the letter index 0 to 25 and
// whether the letter is negated.
func splitIndex(index int) (letter int, negated bool) {
	if index < alphabetSize {
		return index, false
	}
	return index - alphabetSize, true
}

// CodeGenerator consumes the reduce events of the parser.
//
// The handle contains 1 to 3 tokens, depending on the production.
// The returned token is the reduced non-terminal, its Index referring to
// the generator's storage for the partial result.
type CodeGenerator interface {
	Generate(p Production, handle ...Attr) Attr
}

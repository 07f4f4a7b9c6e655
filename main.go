package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdc-tools/bexpr/mcdc"
)

const version = "0.4.0"

// largeTree is the number of nodes above which the printed tree becomes
// hard to read in a terminal.
const largeTree = 200

var exit = os.Exit

func main() {
	exit(bexprMain(os.Stdout, os.Stderr, os.Args...))
}

func bexprMain(stdout, stderr io.Writer, args ...string) int {
	b := newBexpr(stdout, stderr)
	b.parseCommandLine(args)
	b.openOutput()
	if b.interactive {
		b.repl()
	} else {
		for _, src := range b.exprs {
			if err := b.process(src); err != nil {
				b.errf("%s: %s", src, err)
				b.exitCode = 1
			}
		}
	}
	b.writeReport()
	b.cleanUp()
	return b.exitCode
}

type bexpr struct {
	printAST     bool
	outline      bool
	vm           bool
	shortCircuit bool
	table        bool
	influence    bool
	interactive  bool

	vectors []mcdc.TestVector
	exprs   []string

	outFilename    string
	reportFilename string

	out     io.Writer
	outFile *os.File

	runID   string
	reports []report

	exitCode int

	logger
}

func newBexpr(stdout io.Writer, stderr io.Writer) *bexpr {
	var b bexpr
	b.logger.init(stdout, stderr)
	b.out = stdout
	b.runID = uuid.New().String()
	return &b
}

func (b *bexpr) parseCommandLine(argv []string) {
	b.exprs = b.parseOptions(argv)
	if len(b.exprs) == 0 && !b.interactive {
		b.errf("usage: %s [options] expression...", filepath.Base(argv[0]))
		exit(2)
	}
}

func (b *bexpr) parseOptions(argv []string) []string {
	var help, ver bool

	flags := flag.NewFlagSet(filepath.Base(argv[0]), flag.ContinueOnError)
	flags.BoolVar(&help, "help", false,
		"print the available command line options")
	flags.BoolVar(&b.printAST, "ast", true,
		"print the abstract syntax tree")
	flags.BoolVar(&b.outline, "outline", false,
		"print the abstract syntax tree top-down")
	flags.BoolVar(&b.vm, "vm", false,
		"print the object code for the virtual machine")
	flags.BoolVar(&b.shortCircuit, "short-circuit", false,
		"mark the operands that short-circuit evaluation skips")
	flags.Var(newVectorFlag(&b.vectors), "vector",
		"evaluate the expression for the test `vector`, such as 5 or 0b101")
	flags.BoolVar(&b.table, "table", false,
		"evaluate the expression for all test vectors")
	flags.BoolVar(&b.influence, "influence", false,
		"determine which conditions can independently affect the outcome")
	flags.StringVar(&b.reportFilename, "json", "",
		"write the evaluation results as JSON to this `file`")
	flags.StringVar(&b.outFilename, "o", "",
		"write the printed trees to this `file` instead of stdout")
	flags.BoolVar(&b.interactive, "interactive", false,
		"read the expressions from the terminal")
	flags.BoolVar(&b.verbose, "verbose", false,
		"show diagnostic messages")
	flags.BoolVar(&ver, "version", false,
		"print the bexpr version")

	flags.SetOutput(b.stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(flags.Output(),
			"usage: %s [options] expression...\n", flags.Name())
		flags.PrintDefaults()
		b.exitCode = 2
	}

	err := flags.Parse(argv[1:])
	if b.exitCode != 0 {
		exit(b.exitCode)
	}
	b.check(err)

	if help {
		flags.SetOutput(b.stdout)
		flags.Usage()
		exit(0)
	}

	if ver {
		b.outf("%s", version)
		exit(0)
	}

	return flags.Args()
}

func (b *bexpr) openOutput() {
	if b.outFilename == "" {
		return
	}
	f, err := os.Create(b.outFilename)
	b.check(err)
	b.outFile = f
	b.out = f
}

// process compiles a single expression and prints everything that the
// options ask for.
func (b *bexpr) process(src string) error {
	tree, err := mcdc.BuildTree(src, b.shortCircuit)
	if err != nil {
		return err
	}
	b.verbosef("%q has %d nodes and %d conditions",
		src, tree.Len(), tree.Symbols().Len())

	rep := report{
		Expression: src,
		RunID:      b.runID,
		Symbols:    string(tree.Symbols().Letters()),
	}

	if b.vm {
		id, err := b.printObjectCode(src, tree)
		if err != nil {
			return err
		}
		rep.ObjectCode = id.String()
	}

	switch {
	case b.table:
		rows, err := tree.TruthTable(b.reportFilename != "")
		if err != nil {
			return err
		}
		b.printTable(tree, rows)
		rep.Rows = rows

	case len(b.vectors) > 0:
		for _, v := range b.vectors {
			row := tree.Row(v, b.reportFilename != "")
			b.printTree(src, tree, fmt.Sprintf("test vector %d (%s)", v, tree.Symbols().Describe(v)))
			rep.Rows = append(rep.Rows, row)
		}

	default:
		b.printTree(src, tree, "")
	}

	if b.influence {
		b.printInfluence(tree)
	}

	b.reports = append(b.reports, rep)
	return nil
}

func (b *bexpr) printTree(src string, tree *mcdc.Tree, subtitle string) {
	if !b.printAST && !b.outline {
		return
	}
	if tree.Len() > largeTree && b.outFile == nil {
		b.verbosef("the tree has %d nodes, consider writing it to a file using -o", tree.Len())
	}

	b.printf("\n------------------ AST   Abstract Syntax Tree      (with attributes) for boolean expression:\n\n'%s'\n", src)
	if subtitle != "" {
		b.printf("\n%s\n", subtitle)
	}
	b.printf("\n------------------\n\n")

	if b.printAST {
		dropped, err := tree.Fprint(b.out)
		b.check(err)
		if dropped > 0 {
			b.verbosef("left out %d labels that are wider than the page", dropped)
		}
	}
	if b.outline {
		if b.printAST {
			b.printf("\n")
		}
		b.printf("%s", tree.Outline())
	}
	b.printf("\n\n")
}

// printObjectCode prints the code for the virtual machine and, for each
// test vector, checks that it computes the same value as the tree.
// It returns the ID of the object code.
func (b *bexpr) printObjectCode(src string, tree *mcdc.Tree) (uuid.UUID, error) {
	gen := mcdc.NewVMGenerator()
	if err := mcdc.Compile(src, gen); err != nil {
		return uuid.Nil, err
	}
	if n := gen.StrayReleases(); n > 0 {
		b.verbosef("the code generator released %d unknown registers", n)
	}

	code := gen.ObjectCode()
	b.printf("\n------------------ Object code %s for '%s' (%d registers)\n\n%s",
		code.ID, src, code.Registers(), code)

	for _, v := range b.vectors {
		value, err := code.Execute(v)
		if err != nil {
			return uuid.Nil, err
		}
		b.printf("vm: test vector %d -> %d\n", v, btoi(value))

		tree.Evaluate(v)
		if tree.Value() != value {
			return uuid.Nil, fmt.Errorf("test vector %d: the object code computes %d, the tree %d",
				v, btoi(value), btoi(tree.Value()))
		}
	}
	return code.ID, nil
}

func (b *bexpr) printTable(tree *mcdc.Tree, rows []mcdc.Row) {
	letters := string(tree.Symbols().Letters())
	b.printf("%8s  %s  %s  %s\n", "vector", letters, "=", "masked")
	for _, row := range rows {
		var bits strings.Builder
		for i := len(letters) - 1; i >= 0; i-- {
			bits.WriteByte(byte('0' + (row.Vector>>uint(i))&1))
		}
		line := fmt.Sprintf("%8d  %s  %d  %s", row.Vector, bits.String(), btoi(row.Value), row.Masked)
		b.printf("%s\n", strings.TrimRight(line, " "))
	}
}

func (b *bexpr) printInfluence(tree *mcdc.Tree) {
	for _, inf := range tree.Influence() {
		if !inf.Independent {
			b.printf("%c: cannot independently affect the outcome\n", inf.Letter)
			continue
		}
		b.printf("%c: independent, for example at %s and %s\n",
			inf.Letter,
			tree.Symbols().Describe(inf.Vector),
			tree.Symbols().Describe(inf.Vector&^tree.Symbols().Mask(int(inf.Letter-'a'))))
	}
}

func (b *bexpr) writeReport() {
	if b.reportFilename == "" {
		return
	}
	b.check(writeJSON(b.reportFilename, b.reports))
	b.verbosef("Wrote %d reports to %s", len(b.reports), b.reportFilename)
}

func (b *bexpr) cleanUp() {
	if b.outFile != nil {
		b.check(b.outFile.Close())
		b.outFile = nil
	}
}

// printf writes to the output selected by the -o option.
func (b *bexpr) printf(format string, args ...interface{}) {
	_, err := fmt.Fprintf(b.out, format, args...)
	b.check(err)
}

// logger provides basic logging and error checking.
type logger struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

func (l *logger) init(stdout io.Writer, stderr io.Writer) {
	l.stdout = stdout
	l.stderr = stderr
}

func (l *logger) check(err error) {
	if err != nil {
		l.errf("%s", err)
		exit(1)
	}
}

func (l *logger) outf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.stdout, format+"\n", args...)
}

func (l *logger) errf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.stderr, format+"\n", args...)
}

func (l *logger) verbosef(format string, args ...interface{}) {
	if l.verbose {
		l.errf(format, args...)
	}
}

// report is the JSON form of the evaluations of a single expression.
type report struct {
	Expression string
	RunID      string
	ObjectCode string `json:",omitempty"` // the ID of the object code, with -vm
	Symbols    string
	Rows       []mcdc.Row
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

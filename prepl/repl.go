package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/ll"
	"github.com/eblume/pcc/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/

// We provide a simple calculator grammar as a default for parsing and
// grammar-analysis experiments.
//
//  s      ➞ stmt
//  stmt   ➞ let ID = expr  |  expr
//  expr   ➞ term sum
//  sum    ➞ + term sum  |  ε
//  term   ➞ factor prod
//  prod   ➞ * factor prod  |  ε
//  factor ➞ ( expr )  |  NUM  |  ID
//
// Variables are single lowercase letters, so the keyword 'let' always wins
// against ID by longest match.
//
func makeCalcParser(env *Env) (*ll.Parser, *scanner.Scanner) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	scn := scanner.New()
	scn.AddRule("NUM", `[0-9]+`)
	scn.AddRule("ID", `[a-z]`)
	p := ll.NewParser(scn)
	p.AddStartProduction("s", "stmt", ll.Compute(func(xs []interface{}) interface{} {
		return xs[0]
	}))
	p.AddProduction("stmt", "'let' ID '=' expr", ll.Compute(func(xs []interface{}) interface{} {
		n := xs[3].(int)
		v, _ := env.Def(xs[1].(string))
		v.WithValue(n)
		return n
	}))
	p.AddProduction("stmt", "expr", ll.Compute(func(xs []interface{}) interface{} {
		return xs[0]
	}))
	p.AddProduction("expr", "term sum", ll.Compute(func(xs []interface{}) interface{} {
		return xs[0].(int) + xs[1].(int)
	}))
	p.AddProduction("sum", "'+' term sum", ll.Compute(func(xs []interface{}) interface{} {
		return xs[1].(int) + xs[2].(int)
	}))
	p.AddProduction("sum", "", ll.Constant{Value: 0})
	p.AddProduction("term", "factor prod", ll.Compute(func(xs []interface{}) interface{} {
		return xs[0].(int) * xs[1].(int)
	}))
	p.AddProduction("prod", "'*' factor prod", ll.Compute(func(xs []interface{}) interface{} {
		return xs[1].(int) * xs[2].(int)
	}))
	p.AddProduction("prod", "", ll.Constant{Value: 1})
	p.AddProduction("factor", "'(' expr ')'", ll.Compute(func(xs []interface{}) interface{} {
		return xs[1]
	}))
	p.AddProduction("factor", "NUM", ll.Compute(func(xs []interface{}) interface{} {
		n, _ := strconv.Atoi(xs[0].(string))
		return n
	}))
	p.AddProduction("factor", "ID", ll.Compute(func(xs []interface{}) interface{} {
		name := xs[0].(string)
		if v := env.Resolve(name); v != nil {
			return v.Value
		}
		env.Error(fmt.Errorf("undefined variable %s", name))
		return 0
	}))
	if err := p.Finalize(); err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	tracer().SetTraceLevel(level)
	return p, scn
}

// main() starts an interactive CLI ("P.REPL"), where users may enter
// calculator statements. P.REPL will parse and evaluate each statement and
// print out the result. Colon-commands expose the grammar's LL(1)
// analysis, e.g. ':first factor' or ':dump'.
//
// Please refer to packages "ll" and "scanner".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to PREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and variable environment
	env := NewEnv()
	parser, scn := makeCalcParser(env)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	parser.Dump()                               // only visible in debug mode
	input := strings.Join(flag.Args(), " ")
	input = strings.TrimSpace(input)
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.New("prepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		lastInput: input,
		parser:    parser,
		scn:       scn,
		repl:      repl,
		env:       env,
	}
	if input != "" {
		if _, err := intp.Eval(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / statements
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	lastInput string
	lastValue interface{}
	parser    *ll.Parser
	scn       *scanner.Scanner
	repl      *readline.Instance
	env       *Env
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	lines := bufio.NewScanner(f)
	lineno := 1
	for lines.Scan() {
		line := lines.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		_, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	v, _ := intp.env.Def("a") // pre-set for debugging purposes
	v.WithValue(7)
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a calculator statement or a colon-command, given on a
// line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		args := strings.Fields(line)
		return intp.Execute(args[0], args[1:])
	}
	tracer().Infof("----------------------- Parse ------------------------------")
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	v, err := intp.parser.Parse(line)
	tracer().SetTraceLevel(level)
	if err != nil {
		return false, err
	}
	intp.lastInput = line
	intp.printResult(v)
	intp.env.Error(nil)
	return false, nil
}

func (intp *Intp) printResult(result interface{}) error {
	if err := intp.env.LastError(); err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.lastValue = result
	pterm.Info.Println("=", result)
	return nil
}

// Execute runs a colon-command.
//
//  :quit             leave the REPL
//  :vars             list the variable bindings
//  :dump             print the grammar's productions as a tree
//  :first symbol…    print FIRST of a symbol string
//  :follow symbol    print FOLLOW of a nonterminal
//
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":vars":
		intp.env.Each(func(name string, v *Var) {
			pterm.Println(fmt.Sprintf("%s = %d", name, v.Value))
		})
		return false, nil
	case ":dump":
		intp.dumpGrammar()
		return false, nil
	case ":first":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: :first symbol…")
		}
		ss, err := intp.symbols(args)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(intp.parser.First(ss).String())
		return false, nil
	case ":follow":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :follow nonterminal")
		}
		set := intp.parser.Follow(pcc.Nonterminal{Name: args[0]})
		if set == nil {
			return false, fmt.Errorf("no such nonterminal: %s", args[0])
		}
		pterm.Info.Println(set.String())
		return false, nil
	}
	return false, fmt.Errorf("no such command: %s", cmd)
}

// symbols resolves command arguments to grammar symbols: registered
// terminal names resolve to terminals, anything else to nonterminals of
// the calculator grammar.
func (intp *Intp) symbols(args []string) (pcc.SymbolString, error) {
	ss := make(pcc.SymbolString, 0, len(args))
	for _, arg := range args {
		if term, ok := intp.scn.Terminal(arg); ok {
			ss = append(ss, term)
			continue
		}
		nt := pcc.Nonterminal{Name: arg}
		if intp.parser.Follow(nt) == nil {
			return nil, fmt.Errorf("no such symbol: %s", arg)
		}
		ss = append(ss, nt)
	}
	return ss, nil
}

// dumpGrammar prints the productions as a two-level tree, grouped by
// nonterminal.
func (intp *Intp) dumpGrammar() {
	list := pterm.LeveledList{}
	last := ""
	for _, prod := range intp.parser.Productions() {
		if prod.LHS.Name != last {
			last = prod.LHS.Name
			list = append(list, pterm.LeveledListItem{Level: 0, Text: prod.LHS.Name})
		}
		list = append(list, pterm.LeveledListItem{Level: 1, Text: prod.String()})
	}
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

package ll

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/scanner"
	"github.com/eblume/pcc/uniq"
)

// --- Productions -----------------------------------------------------------

// Production is a single production of a grammar: a left-hand nonterminal
// deriving a string of symbols, with a semantic action attached.
// Productions are numbered in order of registration, starting at 0.
type Production struct {
	Serial int
	LHS    pcc.Nonterminal
	RHS    pcc.SymbolString
	Action Action
}

func (p *Production) String() string {
	return fmt.Sprintf("%d: [%s] ::= %v", p.Serial, p.LHS.Name, p.RHS)
}

// --- Parser ----------------------------------------------------------------

// Parser is an LL(1) parser for a single grammar. Create one with
// NewParser, register productions, finalize, then parse. All of this is
// single-threaded; only a finalized parser, being immutable, may be shared.
type Parser struct {
	scn         *scanner.Scanner
	productions []*Production
	derivations map[pcc.Nonterminal][]*Production // productions grouped by LHS
	referenced  map[pcc.Nonterminal]bool          // nonterminals referenced on a RHS
	literals    map[string]pcc.Terminal           // interned literals, by escaped pattern
	start       *Production
	analysis    *analysis
	table       *Table
	finalized   bool
	invalid     error // a failed Finalize poisons the parser
}

// NewParser creates an empty parser on top of a scanner. The scanner is a
// true collaborator, not a snapshot: quoted literals in production rules
// register lexical rules with it.
func NewParser(scn *scanner.Scanner) *Parser {
	return &Parser{
		scn:         scn,
		derivations: make(map[pcc.Nonterminal][]*Production),
		referenced:  make(map[pcc.Nonterminal]bool),
		literals:    make(map[string]pcc.Terminal),
	}
}

// AddProduction registers the production name ::= rule, with an action to
// run when the production is matched. The rule text is a whitespace-
// separated sequence of grammar symbols:
//
//   'x'   a quoted literal; a terminal matching exactly x is minted and
//         registered with the scanner, reused if x was seen before
//   NUM   an uppercase identifier or the name of a registered lexical
//         rule: a terminal
//   expr  any other identifier: a nonterminal
//
// An empty rule text registers an epsilon production. A nil action is
// treated as Constant{}.
func (p *Parser) AddProduction(name, rule string, action Action) error {
	_, err := p.addProduction(name, rule, action, false)
	return err
}

// AddStartProduction registers the start production of the grammar.
// Exactly one production must be registered this way; a second one is a
// GrammarError. The value of a parse is the value of the start
// production's action.
func (p *Parser) AddStartProduction(name, rule string, action Action) error {
	_, err := p.addProduction(name, rule, action, true)
	return err
}

func (p *Parser) addProduction(name, rule string, action Action, isStart bool) (*Production, error) {
	if p.invalid != nil {
		return nil, p.invalid
	}
	if p.finalized {
		return nil, &GrammarError{Reason: "grammar is finalized, productions cannot be added"}
	}
	if isStart && p.start != nil {
		return nil, &GrammarError{Symbol: name, Reason: "a start production is already designated"}
	}
	if !pcc.IsSymbolName(name) {
		return nil, &pcc.NameError{Name: name, Reason: "not an identifier"}
	}
	if _, ok := p.scn.Terminal(name); ok {
		return nil, &GrammarError{Symbol: name, Reason: "name is registered as a terminal"}
	}
	rhs, err := p.symbolize(rule)
	if err != nil {
		return nil, err
	}
	if action == nil {
		action = Constant{}
	}
	lhs := pcc.Nonterminal{Name: name}
	prod := &Production{
		Serial: len(p.productions),
		LHS:    lhs,
		RHS:    rhs,
		Action: action,
	}
	p.productions = append(p.productions, prod)
	p.derivations[lhs] = append(p.derivations[lhs], prod)
	if isStart {
		p.start = prod
	}
	tracer().Debugf("add production %v", prod)
	return prod, nil
}

// symbolize translates rule text into a symbol string. Empty rule text
// denotes epsilon.
func (p *Parser) symbolize(rule string) (pcc.SymbolString, error) {
	fields := strings.Fields(rule)
	if len(fields) == 0 {
		return pcc.SymbolString{pcc.Epsilon}, nil
	}
	ss := make(pcc.SymbolString, 0, len(fields))
	for _, f := range fields {
		sym, err := p.symbol(f)
		if err != nil {
			return nil, err
		}
		ss = append(ss, sym)
	}
	return ss, nil
}

// symbol resolves a single field of rule text to a grammar symbol.
func (p *Parser) symbol(field string) (pcc.Symbol, error) {
	if len(field) >= 2 && strings.HasPrefix(field, "'") && strings.HasSuffix(field, "'") {
		return p.internLiteral(field[1 : len(field)-1])
	}
	if term, ok := p.scn.Terminal(field); ok {
		return term, nil
	}
	if pcc.IsTokenName(field) {
		return nil, &UndefinedTokenError{Name: field}
	}
	if pcc.IsSymbolName(field) {
		nt := pcc.Nonterminal{Name: field}
		p.referenced[nt] = true
		return nt, nil
	}
	return nil, &pcc.NameError{Name: field, Reason: "neither a literal, a terminal nor a nonterminal"}
}

// internLiteral returns the terminal matching exactly the literal text,
// minting a name and registering a rule with the scanner on first use.
func (p *Parser) internLiteral(text string) (pcc.Terminal, error) {
	pattern := regexp.QuoteMeta(text)
	if term, ok := p.literals[pattern]; ok {
		return term, nil
	}
	name, err := uniq.String(func(n string) bool {
		_, taken := p.scn.Terminal(n)
		return taken
	}, uniq.Config{Prefix: "LITERAL_"})
	if err != nil {
		return pcc.Terminal{}, err
	}
	term, err := p.scn.AddRule(name, pattern)
	if err != nil {
		return pcc.Terminal{}, err
	}
	p.literals[pattern] = term
	tracer().Debugf("literal '%s' interned as %s", text, name)
	return term, nil
}

// --- Finalization ----------------------------------------------------------

// Finalize freezes the grammar: the FIRST and FOLLOW sets are computed,
// the grammar is verified to be LL(1), and the prediction table is
// constructed. A successfully finalized parser is immutable and ready for
// parsing; further productions are rejected. A failed Finalize poisons the
// parser for good, every later operation returns the same error.
// Finalizing twice is an error and alters nothing.
func (p *Parser) Finalize() error {
	if p.invalid != nil {
		return p.invalid
	}
	if p.finalized {
		return &GrammarError{Reason: "grammar is already finalized"}
	}
	if err := p.finalize(); err != nil {
		tracer().Errorf("finalize failed: %v", err)
		p.invalid = err
		return err
	}
	p.finalized = true
	return nil
}

func (p *Parser) finalize() error {
	if p.start == nil {
		return &GrammarError{Reason: "no start production designated"}
	}
	if err := p.checkDefined(); err != nil {
		return err
	}
	p.analysis = newAnalysis(p)
	p.analysis.computeFollow()
	if err := p.validate(); err != nil {
		return err
	}
	p.table = p.buildTable()
	tracer().Infof("grammar finalized: %d productions, LL(1) check passed", len(p.productions))
	return nil
}

// checkDefined verifies that every nonterminal referenced on a right-hand
// side has at least one production.
func (p *Parser) checkDefined() error {
	for nt := range p.referenced {
		if len(p.derivations[nt]) == 0 {
			return &GrammarError{Symbol: nt.Name, Reason: "no productions"}
		}
	}
	return nil
}

// Finalized reports whether the grammar went through Finalize successfully.
func (p *Parser) Finalized() bool {
	return p.finalized
}

// --- Introspection ---------------------------------------------------------

// Productions returns all productions in order of registration. Callers
// must not modify the returned slice.
func (p *Parser) Productions() []*Production {
	return p.productions
}

// StartProduction returns the designated start production, or nil if none
// has been registered yet.
func (p *Parser) StartProduction() *Production {
	return p.start
}

// First returns the FIRST set of a symbol string: every terminal which can
// begin text derived from it, plus Epsilon if it can derive the empty
// string. Defined once the grammar is finalized; before that, First
// returns nil.
func (p *Parser) First(ss pcc.SymbolString) *TerminalSet {
	if p.analysis == nil {
		tracer().Errorf("grammar not finalized, FIRST sets not available")
		return nil
	}
	return p.analysis.firstOf(ss)
}

// Follow returns the FOLLOW set of a nonterminal: every terminal which can
// appear immediately behind it in a derivation from the start symbol.
// Defined once the grammar is finalized; before that, and for unknown
// nonterminals, Follow returns nil.
func (p *Parser) Follow(nt pcc.Nonterminal) *TerminalSet {
	if p.analysis == nil {
		tracer().Errorf("grammar not finalized, FOLLOW sets not available")
		return nil
	}
	return p.analysis.follow[nt]
}

// Table returns the prediction table of a finalized grammar, or nil before
// Finalize.
func (p *Parser) Table() *Table {
	if p.table == nil {
		tracer().P("ll", "table").Errorf("table not yet initialized")
	}
	return p.table
}

// Dump logs the grammar's productions, for debugging purposes.
func (p *Parser) Dump() {
	for _, prod := range p.productions {
		marker := " "
		if prod == p.start {
			marker = "*"
		}
		tracer().Debugf("%s %v", marker, prod)
	}
}

package pcc

import (
	"bytes"
	"regexp"
)

// --- Grammar symbols -------------------------------------------------------

// Symbol is a symbol of a grammar, either a Terminal or a Nonterminal.
// The union is closed: no further symbol kinds exist. Both concrete types
// are small comparable value types and may be used as map keys or set
// members directly.
type Symbol interface {
	String() string
	isSymbol()
}

// Terminal is a grammar symbol without derivations. Terminals are produced
// by a scanner matching lexical rules against input text; Pattern is the
// rule's regular expression. Two terminals are the same symbol iff name,
// pattern and silent flag all agree.
//
// Silent terminals are scanned and consumed, but never emitted as lexemes.
// Whitespace skipping is implemented this way.
type Terminal struct {
	Name    string
	Pattern string
	Silent  bool
}

func (t Terminal) isSymbol() {}

func (t Terminal) String() string {
	return t.Name
}

// Nonterminal is a grammar symbol which derives symbol strings via
// productions.
type Nonterminal struct {
	Name string
}

func (n Nonterminal) isSymbol() {}

func (n Nonterminal) String() string {
	return n.Name
}

// --- Reserved terminals ----------------------------------------------------

// EOF and Epsilon are sentinel terminals. EOF marks the end of the input
// stream; Epsilon marks the empty right-hand side of a production. Their
// names are not legal rule names (see IsSymbolName), so clients can never
// register colliding terminals.
var (
	EOF     = Terminal{Name: "_EOF", Pattern: "$"}
	Epsilon = Terminal{Name: "_EPSILON", Pattern: ""}
)

// --- Symbol strings --------------------------------------------------------

// SymbolString is a finite ordered sequence of symbols, e.g. the right-hand
// side of a production. Symbol strings are treated as immutable values
// throughout this module: deriving a new one always allocates.
type SymbolString []Symbol

// Eq compares two symbol strings element-wise.
func (ss SymbolString) Eq(other SymbolString) bool {
	if len(ss) != len(other) {
		return false
	}
	for i, sym := range ss {
		if sym != other[i] {
			return false
		}
	}
	return true
}

// Append returns a new symbol string with sym appended. ss is left
// untouched.
func (ss SymbolString) Append(sym Symbol) SymbolString {
	ext := make(SymbolString, len(ss), len(ss)+1)
	copy(ext, ss)
	return append(ext, sym)
}

func (ss SymbolString) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, sym := range ss {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Names -----------------------------------------------------------------

var symbolNamePattern = regexp.MustCompile(`^[a-zA-Z][_a-zA-Z0-9]*$`)
var tokenNamePattern = regexp.MustCompile(`^[A-Z][_A-Z0-9]*$`)

// IsSymbolName reports whether name is usable as the name of a grammar
// symbol: a letter followed by letters, digits or underscores. The
// reserved names of EOF and Epsilon start with an underscore and therefore
// never qualify.
func IsSymbolName(name string) bool {
	return symbolNamePattern.MatchString(name)
}

// IsTokenName reports whether name follows the uppercase naming convention
// for terminals, i.e. it consists of uppercase letters, digits and
// underscores only. The grammar builder treats identifiers of this shape
// as terminal references.
func IsTokenName(name string) bool {
	return tokenNamePattern.MatchString(name)
}

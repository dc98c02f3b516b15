package pcc

import "fmt"

// --- Lexemes ---------------------------------------------------------------

// Lexeme is a terminal together with the text it matched, produced by a
// scanner and consumed by a parser. Line and Col locate the start of the
// match in the input; both are 1-based, and columns count runes, not bytes.
//
// A parser matching the end of the input sees a synthetic lexeme carrying
// the EOF terminal, with Line and Col set to -1.
type Lexeme struct {
	Terminal Terminal
	Text     string
	Line     int
	Col      int
}

func (l Lexeme) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", l.Terminal.Name, l.Text, l.Line, l.Col)
}

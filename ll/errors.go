package ll

import "fmt"

// GrammarError reports a structural defect of the grammar itself, found
// while adding productions or during Finalize: a missing or duplicate
// start production, an undefined nonterminal, a grammar which is not
// LL(1). A parser whose Finalize failed stays unusable.
type GrammarError struct {
	Symbol string // name of the offending nonterminal, may be empty
	Reason string
}

func (e *GrammarError) Error() string {
	if e.Symbol == "" {
		return "grammar error: " + e.Reason
	}
	return fmt.Sprintf("grammar error for symbol %s: %s", e.Symbol, e.Reason)
}

// UndefinedTokenError reports a rule-text reference to a terminal which is
// not registered with the scanner.
type UndefinedTokenError struct {
	Name string
}

func (e *UndefinedTokenError) Error() string {
	return fmt.Sprintf("token %s is not registered with the scanner", e.Name)
}

// ParsingError reports a syntax error: input which does not match the
// grammar. It aborts the parse it occurred in; the parser itself remains
// usable.
type ParsingError struct {
	Expected string // name of the expected terminal, may be empty
	Found    string // name of the terminal found instead
	Text     string // text of the offending lexeme
	Line     int
	Col      int
}

func (e *ParsingError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected %s %q on line %d at column %d", e.Found, e.Text, e.Line, e.Col)
	}
	return fmt.Sprintf("expected %s, found %s %q on line %d at column %d",
		e.Expected, e.Found, e.Text, e.Line, e.Col)
}

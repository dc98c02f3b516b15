package lexmach

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/scanner"
)

// lexmachine adapter

// tracer traces with key 'pcc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pcc.scanner")
}

// LMAdapter wraps a compiled lexmachine lexer so that its token output can
// feed the parsers of package ll. Lexmachine identifies token categories
// by small integers; the adapter translates them to the grammar's
// terminals.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	terms map[int]pcc.Terminal
}

// NewLMAdapter creates a new lexmachine adapter. init receives the fresh
// lexer and has to register all patterns, tagging matches with token ids
// via MakeToken (or dropping them via Skip); terminals maps those ids to
// the terminals the grammar knows.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), terminals map[int]pcc.Terminal) (*LMAdapter, error) {
	adapter := &LMAdapter{terms: terminals}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner implements the
// scanner.Stream interface and can be handed to ll.Parser.ParseFrom.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, terms: lm.terms}, nil
}

// LMScanner is a stream of lexemes over one input, backed by a lexmachine
// scanner.
type LMScanner struct {
	scanner *lexmachine.Scanner
	terms   map[int]pcc.Terminal
}

var _ scanner.Stream = (*LMScanner)(nil)

// Next is part of the Stream interface. It returns io.EOF after the last
// token. Scanning errors, unconsumed input included, are returned as they
// are; they abort a parse driven by this stream.
func (lms *LMScanner) Next() (pcc.Lexeme, error) {
	tok, err, eof := lms.scanner.Next()
	if eof {
		return pcc.Lexeme{}, io.EOF
	}
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return pcc.Lexeme{}, err
	}
	token := tok.(*lexmachine.Token)
	term, ok := lms.terms[token.Type]
	if !ok {
		return pcc.Lexeme{}, fmt.Errorf("no terminal registered for token id %d", token.Type)
	}
	l := pcc.Lexeme{
		Terminal: term,
		Text:     string(token.Lexeme),
		Line:     token.StartLine,
		Col:      token.StartColumn,
	}
	tracer().Debugf("emit %v", l)
	return l, nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which tags a scanned match with a
// token id.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

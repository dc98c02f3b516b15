package ll

import (
	"io"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/scanner"
)

// --- Lookahead cursor ------------------------------------------------------

// A cursor wraps a lexeme stream with a single lexeme of lookahead. Once
// the stream is exhausted the cursor yields synthetic EOF lexemes, without
// bound, so end-of-input is matched like any other terminal.
type cursor struct {
	src    scanner.Stream
	ahead  pcc.Lexeme
	loaded bool
	done   bool
}

var eofLexeme = pcc.Lexeme{Terminal: pcc.EOF, Text: "EOF", Line: -1, Col: -1}

func newCursor(src scanner.Stream) *cursor {
	return &cursor{src: src}
}

// peek returns the upcoming lexeme without consuming it.
func (c *cursor) peek() (pcc.Lexeme, error) {
	if c.loaded {
		return c.ahead, nil
	}
	if c.done {
		return eofLexeme, nil
	}
	l, err := c.src.Next()
	if err == io.EOF {
		c.done = true
		return eofLexeme, nil
	}
	if err != nil {
		return pcc.Lexeme{}, err
	}
	c.ahead, c.loaded = l, true
	return l, nil
}

// poll consumes and returns the upcoming lexeme.
func (c *cursor) poll() (pcc.Lexeme, error) {
	l, err := c.peek()
	c.loaded = false
	return l, err
}

// --- Parsing ---------------------------------------------------------------

// Parse scans and parses input and returns the value of the start
// production's action. A parser which is not yet finalized is finalized
// first. Parse may be called any number of times; a failed parse does not
// affect the parser.
func (p *Parser) Parse(input string) (interface{}, error) {
	if err := p.ensureFinalized(); err != nil {
		return nil, err
	}
	lexemes, err := p.scn.Scan(input)
	if err != nil {
		return nil, err
	}
	return p.parse(newCursor(lexemes))
}

// ParseFrom parses the lexemes of an arbitrary stream, e.g. an adapter for
// a foreign tokenizer. The lexemes must carry terminals known to the
// grammar; unknown ones fail the parse with a ParsingError.
func (p *Parser) ParseFrom(src scanner.Stream) (interface{}, error) {
	if err := p.ensureFinalized(); err != nil {
		return nil, err
	}
	return p.parse(newCursor(src))
}

func (p *Parser) ensureFinalized() error {
	if p.invalid != nil {
		return p.invalid
	}
	if p.finalized {
		return nil
	}
	return p.Finalize()
}

func (p *Parser) parse(c *cursor) (interface{}, error) {
	tracer().Debugf("=== parse ==========================================")
	v, err := p.derive(p.start, c)
	if err != nil {
		return nil, err
	}
	// the start production implicitly ends with EOF
	l, err := c.poll()
	if err != nil {
		return nil, err
	}
	if l.Terminal != pcc.EOF {
		return nil, &ParsingError{
			Expected: pcc.EOF.Name,
			Found:    l.Terminal.Name,
			Text:     l.Text,
			Line:     l.Line,
			Col:      l.Col,
		}
	}
	tracer().Debugf("accept, value %v", v)
	return v, nil
}

// derive matches the right-hand side of a production against the input:
// terminals are matched against the next lexeme, nonterminals are expanded
// through the prediction table using one lexeme of lookahead. The
// children's values are collected left to right and the production's
// action is evaluated over them. Epsilon matches the empty input and
// contributes no child.
func (p *Parser) derive(prod *Production, c *cursor) (interface{}, error) {
	tracer().Debugf("derive %v", prod)
	children := make([]interface{}, 0, len(prod.RHS))
	for _, sym := range prod.RHS {
		switch s := sym.(type) {
		case pcc.Terminal:
			if s == pcc.Epsilon {
				continue
			}
			l, err := c.poll()
			if err != nil {
				return nil, err
			}
			if l.Terminal != s {
				return nil, &ParsingError{
					Expected: s.Name,
					Found:    l.Terminal.Name,
					Text:     l.Text,
					Line:     l.Line,
					Col:      l.Col,
				}
			}
			children = append(children, l.Text)
		case pcc.Nonterminal:
			l, err := c.peek()
			if err != nil {
				return nil, err
			}
			next := p.table.Lookup(s, l.Terminal)
			if next == nil {
				return nil, &ParsingError{
					Found: l.Terminal.Name,
					Text:  l.Text,
					Line:  l.Line,
					Col:   l.Col,
				}
			}
			v, err := p.derive(next, c)
			if err != nil {
				return nil, err
			}
			children = append(children, v)
		}
	}
	return eval(prod.Action, children), nil
}

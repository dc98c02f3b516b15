/*
Package scanner implements a rule-based longest-match tokenizer, together
with the lexeme stream interface feeding the parsers of package ll.

A Scanner owns a table of named lexical rules. Scanning tries every rule at
the current input position and emits the longest non-empty match as a
lexeme. The rules compete independently: the scanner deliberately is not a
composition of all rules into one automaton, so a rule matches exactly what
its own pattern matches. If two rules match the same length, the winner is
arbitrary. This is a documented property, not a defect: a fixed tie-break
order would silently decide which grammars are accepted, and clients should
not rely on one.

Rules flagged as silent consume input and advance the position, but emit no
lexeme. Whitespace skipping is implemented this way, without special cases
in the parser.

Usage

	scn := scanner.New() // skips whitespace by default
	scn.AddRule("NUM", `[0-9]+`)
	lexemes, err := scn.Scan("2 + 3")
	for {
		l, err := lexemes.Next()
		if err == io.EOF {
			break
		}
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/
package scanner

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/eblume/pcc"
)

// tracer traces with key 'pcc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pcc.scanner")
}

// LiteralName is the name of the reserved literal fallback terminal (see
// option ReportLiterals). Clients cannot register a rule under this name.
const LiteralName = "LITERAL"

// Stream is the interface parsers use to pull lexemes one at a time.
// Next returns io.EOF after the last lexeme of the input; scanning
// failures surface as *NoMatchError. Streams are not restartable.
type Stream interface {
	Next() (pcc.Lexeme, error)
}

// Scanner holds a table of named lexical rules. Create one with New, add
// rules, then call Scan, possibly repeatedly. A Scanner may be shared by
// everything scanning the same language; it is not safe for concurrent
// mutation.
type Scanner struct {
	rules          map[string]*rule
	literal        *rule // fallback, nil unless option ReportLiterals is set
	skipWhitespace bool
	skipNewlines   bool
	reportLiterals bool
}

// A rule pairs a terminal with its compiled pattern. Patterns are anchored
// at the current scan position.
type rule struct {
	term pcc.Terminal
	re   *regexp.Regexp
}

// New creates a Scanner. By default whitespace is skipped silently and
// unmatchable characters are reported as literals; see the Option
// functions.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		rules:          make(map[string]*rule),
		skipWhitespace: true,
		skipNewlines:   true,
		reportLiterals: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.skipWhitespace {
		s.install("WHITESPACE", `\s+`, true)
	} else if s.skipNewlines {
		s.install("NEWLINE", `[\n]+`, true)
	}
	if s.reportLiterals {
		s.literal = &rule{
			term: pcc.Terminal{Name: LiteralName, Pattern: `\S`},
			re:   regexp.MustCompile(`\A\S`),
		}
	}
	return s
}

// --- Scanner options -------------------------------------------------------

// Option configures a Scanner.
type Option func(s *Scanner)

// SkipWhitespace sets or clears the automatic silent rule
// WHITESPACE = `\s+`. Set by default.
func SkipWhitespace(b bool) Option {
	return func(s *Scanner) {
		s.skipWhitespace = b
	}
}

// SkipNewlines sets or clears the automatic silent rule NEWLINE = `[\n]+`,
// which is installed only if SkipWhitespace is cleared. Set by default.
func SkipNewlines(b bool) Option {
	return func(s *Scanner) {
		s.skipNewlines = b
	}
}

// ReportLiterals sets or clears the literal fallback: where no rule
// matches, a single non-whitespace character is emitted as a lexeme of the
// reserved terminal LITERAL. The fallback does not compete with the rule
// table, it applies only if every rule failed. Set by default.
//
// Grammars use the fallback to accept one-character operators and
// punctuation without a dedicated rule per character.
func ReportLiterals(b bool) Option {
	return func(s *Scanner) {
		s.reportLiterals = b
	}
}

// --- Rule table ------------------------------------------------------------

// AddRule registers the lexical rule name = pattern and returns the
// terminal which its matches will carry. The name must be an identifier
// (*pcc.NameError otherwise) and fresh (*pcc.DuplicateNameError); the
// pattern must compile as a regular expression.
func (s *Scanner) AddRule(name, pattern string) (pcc.Terminal, error) {
	return s.add(name, pattern, false)
}

// AddSilentRule registers a rule whose matches are consumed without being
// emitted. Use it for whitespace, comments and other inter-token fill.
func (s *Scanner) AddSilentRule(name, pattern string) (pcc.Terminal, error) {
	return s.add(name, pattern, true)
}

// Terminal returns the terminal registered under name, if any. The
// reserved LITERAL terminal is found, too, if the fallback is active.
func (s *Scanner) Terminal(name string) (pcc.Terminal, bool) {
	if r, ok := s.rules[name]; ok {
		return r.term, true
	}
	if s.literal != nil && name == LiteralName {
		return s.literal.term, true
	}
	return pcc.Terminal{}, false
}

func (s *Scanner) add(name, pattern string, silent bool) (pcc.Terminal, error) {
	if name == LiteralName {
		return pcc.Terminal{}, &pcc.NameError{Name: name, Reason: "reserved for the literal fallback"}
	}
	if !pcc.IsSymbolName(name) {
		return pcc.Terminal{}, &pcc.NameError{Name: name, Reason: "not an identifier"}
	}
	if _, ok := s.rules[name]; ok {
		return pcc.Terminal{}, &pcc.DuplicateNameError{Name: name}
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return pcc.Terminal{}, fmt.Errorf("rule %s does not compile: %w", name, err)
	}
	term := pcc.Terminal{Name: name, Pattern: pattern, Silent: silent}
	s.rules[name] = &rule{term: term, re: re}
	tracer().Debugf("scanner rule %s = `%s`", name, pattern)
	return term, nil
}

// install adds one of the automatic rules; the patterns are known to
// compile.
func (s *Scanner) install(name, pattern string, silent bool) {
	s.add(name, pattern, silent)
}

// --- Scanning --------------------------------------------------------------

// Scan starts scanning input. The rule table must not be empty. The
// returned stream is lazy: input is matched as lexemes are pulled, and
// the stream cannot be restarted. Create a new stream for every input.
func (s *Scanner) Scan(input string) (*Lexemes, error) {
	if len(s.rules) == 0 {
		return nil, fmt.Errorf("scanner has an empty rule table")
	}
	tracer().Debugf("start scanning %d bytes of input", len(input))
	return &Lexemes{scn: s, input: input, line: 1}, nil
}

// Lexemes is the lexeme stream produced by Scanner.Scan.
type Lexemes struct {
	scn   *Scanner
	input string
	pos   int   // byte position of the scan
	line  int   // 1-based line number at pos
	col   int   // 0-based rune column at pos
	err   error // sticky error, io.EOF after the input is exhausted
}

var _ Stream = (*Lexemes)(nil)

// Next returns the next non-silent lexeme of the input. After the last
// lexeme every call returns io.EOF. A position where no rule and no
// literal fallback matches yields a *NoMatchError; errors are sticky, the
// stream will not advance past one.
func (lx *Lexemes) Next() (pcc.Lexeme, error) {
	if lx.err != nil {
		return pcc.Lexeme{}, lx.err
	}
	for lx.pos < len(lx.input) {
		r, text := lx.match()
		if r == nil {
			lx.err = &NoMatchError{Line: lx.line, Col: lx.col + 1}
			tracer().Errorf(lx.err.Error())
			return pcc.Lexeme{}, lx.err
		}
		l := pcc.Lexeme{Terminal: r.term, Text: text, Line: lx.line, Col: lx.col + 1}
		lx.advance(text)
		if r.term.Silent {
			continue
		}
		tracer().Debugf("emit %v", l)
		return l, nil
	}
	lx.err = io.EOF
	return pcc.Lexeme{}, io.EOF
}

// match tries every rule at the current position and returns the longest
// non-empty match. Ties are resolved arbitrarily. If no rule matched, the
// literal fallback is consulted.
func (lx *Lexemes) match() (*rule, string) {
	rest := lx.input[lx.pos:]
	var best *rule
	bestlen := 0
	for _, r := range lx.scn.rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		if loc[1] > bestlen {
			best, bestlen = r, loc[1]
		}
	}
	if best != nil {
		return best, rest[:bestlen]
	}
	if lx.scn.literal != nil {
		if loc := lx.scn.literal.re.FindStringIndex(rest); loc != nil {
			return lx.scn.literal, rest[:loc[1]]
		}
	}
	return nil, ""
}

// advance moves the scan position over text, tracking line and column.
func (lx *Lexemes) advance(text string) {
	lx.pos += len(text)
	if nl := strings.Count(text, "\n"); nl > 0 {
		lx.line += nl
		tail := text[strings.LastIndexByte(text, '\n')+1:]
		lx.col = utf8.RuneCountInString(tail)
	} else {
		lx.col += utf8.RuneCountInString(text)
	}
}

// --- Errors ----------------------------------------------------------------

// NoMatchError reports an input position where scanning got stuck: no rule
// matched, and the literal fallback, if active, did not apply either.
// Line and Col are 1-based.
type NoMatchError struct {
	Line int
	Col  int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no rule matches input on line %d at column %d", e.Line, e.Col)
}

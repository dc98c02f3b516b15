package ll

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/scanner"
)

// makeCalcParser builds a calculator on the expression grammar of
// makeExprGrammar, with actions evaluating arithmetic on the fly. The
// epsilon productions contribute the neutral element of their operation.
func makeCalcParser(t *testing.T) *Parser {
	scn := scanner.New()
	if _, err := scn.AddRule("NUM", `[0-9]+`); err != nil {
		t.Fatal(err)
	}
	p := NewParser(scn)
	prods := []struct {
		name, rule string
		start      bool
		action     Action
	}{
		{"E", "T EP", true, Compute(func(xs []interface{}) interface{} {
			return xs[0].(int) + xs[1].(int)
		})},
		{"EP", "'+' T EP", false, Compute(func(xs []interface{}) interface{} {
			return xs[1].(int) + xs[2].(int)
		})},
		{"EP", "", false, Constant{Value: 0}},
		{"T", "F TP", false, Compute(func(xs []interface{}) interface{} {
			return xs[0].(int) * xs[1].(int)
		})},
		{"TP", "'*' F TP", false, Compute(func(xs []interface{}) interface{} {
			return xs[1].(int) * xs[2].(int)
		})},
		{"TP", "", false, Constant{Value: 1}},
		{"F", "'(' E ')'", false, Compute(func(xs []interface{}) interface{} {
			return xs[1]
		})},
		{"F", "NUM", false, Compute(func(xs []interface{}) interface{} {
			n, _ := strconv.Atoi(xs[0].(string))
			return n
		})},
	}
	for _, prod := range prods {
		var err error
		if prod.start {
			err = p.AddStartProduction(prod.name, prod.rule, prod.action)
		} else {
			err = p.AddProduction(prod.name, prod.rule, prod.action)
		}
		if err != nil {
			t.Fatalf("cannot add [%s] ::= %s: %v", prod.name, prod.rule, err)
		}
	}
	return p
}

var calcInputs = []string{
	"5",
	"2+3*4",
	"(5+2)",
	"1+((((((((((3))))))))))",
	"1+1+1+1+1+1+1",
	"1*2 + 3*4",
	"(1+2)*3",
}

var calcResults = []int{5, 14, 7, 4, 7, 14, 9}

func TestParseExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	p := makeCalcParser(t)
	if err := p.Finalize(); err != nil {
		t.Fatal(err)
	}
	for i, input := range calcInputs {
		tracer().Infof("=== '%s' ===================================", input)
		v, err := p.Parse(input)
		if err != nil {
			t.Errorf("parse error for '%s': %v", input, err)
			continue
		}
		if v != calcResults[i] {
			t.Errorf("Expected '%s' to evaluate to %d, got %v", input, calcResults[i], v)
		}
	}
}

func TestParseAutoFinalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	p := makeCalcParser(t)
	v, err := p.Parse("2+3*4")
	if err != nil {
		t.Fatal(err)
	}
	if v != 14 {
		t.Errorf("Expected 14, got %v", v)
	}
	if !p.Finalized() {
		t.Errorf("Expected Parse to finalize the grammar")
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	p := makeCalcParser(t)
	var parsing *ParsingError
	//
	_, err := p.Parse("2+")
	if !errors.As(err, &parsing) {
		t.Fatalf("Expected a ParsingError for '2+', got %v", err)
	}
	if parsing.Found != pcc.EOF.Name {
		t.Errorf("Expected the error to report unexpected end of input, reports %s", parsing.Found)
	}
	//
	_, err = p.Parse("2 3")
	if !errors.As(err, &parsing) {
		t.Fatalf("Expected a ParsingError for '2 3', got %v", err)
	}
	if parsing.Found != "NUM" {
		t.Errorf("Expected the trailing NUM to be reported, got %v", parsing)
	}
	if parsing.Line != 1 || parsing.Col != 3 {
		t.Errorf("Expected the error at 1:3, is %d:%d", parsing.Line, parsing.Col)
	}
	//
	if _, err = p.Parse(")"); !errors.As(err, &parsing) {
		t.Errorf("Expected a ParsingError for ')', got %v", err)
	}
	if _, err = p.Parse(""); !errors.As(err, &parsing) {
		t.Errorf("Expected a ParsingError for empty input, got %v", err)
	}
}

func TestTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	// no nullable tail can swallow the second NUM, so the parse completes
	// and stumbles over the missing end of input
	scn := scanner.New()
	scn.AddRule("NUM", `[0-9]+`)
	p := NewParser(scn)
	p.AddStartProduction("s", "NUM", nil)
	_, err := p.Parse("2 3")
	var parsing *ParsingError
	if !errors.As(err, &parsing) {
		t.Fatalf("Expected a ParsingError for trailing input, got %v", err)
	}
	if parsing.Expected != pcc.EOF.Name || parsing.Found != "NUM" {
		t.Errorf("Expected trailing input to be reported against EOF, got %v", parsing)
	}
}

func TestParserReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	p := makeCalcParser(t)
	if _, err := p.Parse("2+"); err == nil {
		t.Fatalf("Expected a parse error")
	}
	v, err := p.Parse("2+3*4")
	if err != nil {
		t.Fatalf("Expected the parser to survive a failed parse: %v", err)
	}
	if v != 14 {
		t.Errorf("Expected 14, got %v", v)
	}
	if v, _ = p.Parse("2+3*4"); v != 14 {
		t.Errorf("Expected parsing to be repeatable, got %v", v)
	}
}

func TestScanErrorAbortsParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	scn := scanner.New(scanner.ReportLiterals(false))
	scn.AddRule("NUM", `[0-9]+`)
	p := NewParser(scn)
	p.AddStartProduction("s", "NUM", nil)
	_, err := p.Parse("#")
	var nomatch *scanner.NoMatchError
	if !errors.As(err, &nomatch) {
		t.Errorf("Expected the scanning error to surface, got %v", err)
	}
}

func TestActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	scn := scanner.New()
	p := NewParser(scn)
	p.AddStartProduction("s", "'a'", Constant{Value: "ok"})
	v, err := p.Parse("a")
	if err != nil {
		t.Fatal(err)
	}
	if v != "ok" {
		t.Errorf("Expected the constant action value, got %v", v)
	}
	//
	scn = scanner.New()
	p = NewParser(scn)
	p.AddStartProduction("s", "'a'", nil)
	if v, err = p.Parse("a"); err != nil || v != nil {
		t.Errorf("Expected a nil action to produce nil, got %v (%v)", v, err)
	}
}

// sliceStream feeds a fixed sequence of lexemes, mimicking a foreign
// tokenizer.
type sliceStream struct {
	lexemes []pcc.Lexeme
	i       int
}

func (s *sliceStream) Next() (pcc.Lexeme, error) {
	if s.i >= len(s.lexemes) {
		return pcc.Lexeme{}, io.EOF
	}
	l := s.lexemes[s.i]
	s.i++
	return l, nil
}

func TestParseFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.ll")
	defer teardown()
	//
	scn := scanner.New()
	num, _ := scn.AddRule("NUM", `[0-9]+`)
	p := NewParser(scn)
	p.AddStartProduction("s", "NUM", Compute(func(xs []interface{}) interface{} {
		n, _ := strconv.Atoi(xs[0].(string))
		return n
	}))
	src := &sliceStream{lexemes: []pcc.Lexeme{
		{Terminal: num, Text: "7", Line: 1, Col: 1},
	}}
	v, err := p.ParseFrom(src)
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Errorf("Expected 7, got %v", v)
	}
}

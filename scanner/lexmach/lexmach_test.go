package lexmach

import (
	"io"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/ll"
	"github.com/eblume/pcc/scanner"
)

const (
	numID = iota + 1
	plusID
)

func makeAdapter(t *testing.T) (*LMAdapter, map[int]pcc.Terminal) {
	scn := scanner.New()
	num, _ := scn.AddRule("NUM", `[0-9]+`)
	plus, _ := scn.AddRule("PLUS", `\+`)
	terms := map[int]pcc.Terminal{numID: num, plusID: plus}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeToken(numID))
		lexer.Add([]byte(`\+`), MakeToken(plusID))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, terms)
	if err != nil {
		t.Fatal(err)
	}
	return LM, terms
}

var inputStrings = []string{
	"1",
	"1+12",
	"1 + 12 + 123",
}

var tokenCounts = []int{1, 3, 5}

func TestLMScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.scanner")
	defer teardown()
	//
	LM, _ := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+----------+--------")
		stream, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		for {
			l, err := stream.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Error(err)
				break
			}
			t.Logf(" %-4s | %-8q | at %d:%d", l.Terminal.Name, l.Text, l.Line, l.Col)
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+----------+--------")
}

func TestLMScanError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.scanner")
	defer teardown()
	//
	LM, _ := makeAdapter(t)
	stream, err := LM.Scanner("1 ; 2")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = stream.Next(); err != nil {
		t.Fatalf("Expected the leading number to scan, got %v", err)
	}
	if _, err = stream.Next(); err == nil || err == io.EOF {
		t.Errorf("Expected unconsumable input to produce a scanner error")
	}
}

func TestLMParseFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcc.scanner")
	defer teardown()
	//
	scn := scanner.New()
	num, _ := scn.AddRule("NUM", `[0-9]+`)
	plus, _ := scn.AddRule("PLUS", `\+`)
	p := ll.NewParser(scn)
	atoi := func(s interface{}) int {
		n, _ := strconv.Atoi(s.(string))
		return n
	}
	p.AddStartProduction("sum", "NUM more", ll.Compute(func(xs []interface{}) interface{} {
		return atoi(xs[0]) + xs[1].(int)
	}))
	p.AddProduction("more", "PLUS NUM more", ll.Compute(func(xs []interface{}) interface{} {
		return atoi(xs[1]) + xs[2].(int)
	}))
	p.AddProduction("more", "", ll.Constant{Value: 0})
	//
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeToken(numID))
		lexer.Add([]byte(`\+`), MakeToken(plusID))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, map[int]pcc.Terminal{numID: num, plusID: plus})
	if err != nil {
		t.Fatal(err)
	}
	stream, err := LM.Scanner("1 + 2 + 3")
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.ParseFrom(stream)
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Errorf("Expected 1 + 2 + 3 to make 6, got %v", v)
	}
}

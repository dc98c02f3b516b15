/*
Package ll implements an LL(1) parser generator with on-the-fly tables.

Clients build a grammar by registering lexical rules with a scanner and
productions with a parser, then finalize and parse. There is no
code-generation step: analysis and table construction happen at runtime,
which makes the package suited for small to moderate grammars, e.g.
configuration input or small domain-specific languages.

Usage

Grammars are built from production rules with semantic actions attached:

	scn := scanner.New()
	scn.AddRule("NUM", `[0-9]+`)
	p := ll.NewParser(scn)
	p.AddStartProduction("sum", "NUM more", ll.Compute(add))
	p.AddProduction("more", "'+' NUM more", ll.Compute(add))
	p.AddProduction("more", "", ll.Constant{Value: 0})
	if err := p.Finalize(); err != nil {
		// the grammar is not LL(1), or has defects
	}
	v, err := p.Parse("1 + 2 + 3")

The rule text of a production is a whitespace-separated sequence of grammar
symbols: quoted literals ('+'), names of terminals registered with the
scanner, and names of nonterminals. Uppercase identifiers always denote
terminals. An empty rule text denotes an epsilon production.

Finalize computes the FIRST and FOLLOW sets of the grammar, verifies that
it is LL(1), and constructs the prediction table. Parsing is table-driven
recursive descent with a single lexeme of lookahead; the semantic actions
are evaluated bottom-up as productions are matched, and Parse returns the
value of the start production's action.

Grammars have to be LL(1): for every nonterminal the applicable production
must be predictable from one lexeme of lookahead. Grammars which are not
are rejected by Finalize; the generator never rewrites a grammar to make
it fit. Left-recursive grammars are out of contract altogether, the FIRST
computation does not terminate on them. Eliminate left recursion before
feeding a grammar to this package.

A finalized parser is immutable and may be reused for any number of
inputs. Syntax errors abort the single parse they occur in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcc.ll'.
func tracer() tracing.Trace {
	return tracing.Select("pcc.ll")
}

/*
Package lexmach provides an adapter to use the lexmachine scanner generator
with the parsers of PCC.

The rule-based scanner of package scanner tries every rule at every
position, which is robust but not fast. Lexmachine compiles all patterns
into a single DFA and is the better fit for large inputs; the price is
lexmachine's own matching semantics instead of longest-match over
independent rules. For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing regular expressions and
actions. Please refer to the lexmachine documentation on how to instruct
lexmachine. Package lexmach is very opinionated on how to do the setup of
lexmachine. Clients who need more liberty in how to create the scanner
should use their own wrapper code to fit lexmachine into the
scanner.Stream interface.

	const numID = 1
	num, _ := scn.AddRule("NUM", `[0-9]+`) // the grammar's terminals

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which tags a scanned match
		//                   with a token id
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken(numID))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}

Having that, clients use NewLMAdapter to wrap lexmachine into a stream
source. NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := lexmach.NewLMAdapter(init, map[int]pcc.Terminal{numID: num})
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence. The scanner
implements the scanner.Stream interface and plugs into a parser directly.

	stream, err := LM.Scanner("1 22 333")
	if err != nil {
		// do error handling
	}
	v, err := p.ParseFrom(stream)

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/
package lexmach

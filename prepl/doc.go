/*
Package prepl/main provides an interactive command line tool (P.REPL)
for a small calculator language, built on the LL(1) parser generator of
package ll. Users enter expressions and let-statements, which are parsed
and evaluated on the fly; commands give access to the grammar's analysis,
i.e. FIRST and FOLLOW sets and the productions. P.REPL serves as a sandbox
for experiments during early stages of parser development.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcc.ll'
func tracer() tracing.Trace {
	return tracing.Select("pcc.ll")
}

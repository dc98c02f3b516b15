/*
Package pcc is an LL(1) parsing toolbox.

PCC strives to be a small and practical tool to generate parsers
for DSLs on the fly, without a code-generation step.
It focusses on LL(1) grammars and on rule-based scanning. Package structure is
as follows:

■ scanner: Package scanner implements a longest-match tokenizer, driven by a
table of named lexical rules, together with the lexeme stream interface which
feeds the parsers.

■ ll: Package ll implements the LL(1) parser generator: grammar construction,
FIRST and FOLLOW analysis, prediction tables and table-driven recursive
descent parsing with semantic actions.

■ sparse: Package sparse implements sparse integer matrices, backing the
prediction tables.

■ uniq: Package uniq generates fresh names, used for terminals minted from
quoted literals.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/
package pcc

package ll

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/eblume/pcc"
	"github.com/eblume/pcc/sparse"
)

// --- Prediction table ------------------------------------------------------

// Table is the LL(1) prediction table of a finalized grammar: a mapping of
// (nonterminal, lookahead terminal) to the production to derive. It is
// backed by a sparse integer matrix holding production numbers.
//
// For an LL(1)-validated grammar every cell holds at most one production.
// The table nevertheless tolerates double entries: the first registered
// production stays authoritative for lookups, and the collision is
// recorded as a conflict. This keeps a defective table inspectable instead
// of ambiguous.
type Table struct {
	matrix    *sparse.IntMatrix
	prods     []*Production
	rows      map[pcc.Nonterminal]int
	cols      map[pcc.Terminal]int
	conflicts *arraylist.List
}

// A conflict is a cell which received a second production.
type conflict struct {
	nt     pcc.Nonterminal
	la     pcc.Terminal
	first  int32 // production holding the cell
	second int32 // production which collided with it
}

func (c conflict) String() string {
	return fmt.Sprintf("table conflict at (%s,%s): production %d vs. %d", c.nt.Name, c.la.Name, c.first, c.second)
}

// buildTable constructs the prediction table from the FIRST and FOLLOW
// sets: a production A ::= α occupies (A, t) for every t in FIRST(α), and
// additionally (A, t) for every t in FOLLOW(A) if α is nullable.
func (p *Parser) buildTable() *Table {
	terms := newTerminalSet(pcc.EOF)
	for _, prod := range p.productions {
		terms.union(p.analysis.firstOf(prod.RHS))
	}
	for _, s := range p.analysis.follow {
		terms.union(s)
	}
	cols := make(map[pcc.Terminal]int)
	for j, term := range terms.Terminals() {
		cols[term] = j
	}
	rows := make(map[pcc.Nonterminal]int)
	for _, prod := range p.productions {
		if _, ok := rows[prod.LHS]; !ok {
			rows[prod.LHS] = len(rows)
		}
	}
	t := &Table{
		matrix:    sparse.NewIntMatrix(len(rows), len(cols), -1),
		prods:     p.productions,
		rows:      rows,
		cols:      cols,
		conflicts: arraylist.New(),
	}
	for _, prod := range p.productions {
		first := p.analysis.firstOf(prod.RHS)
		for _, la := range first.Terminals() {
			t.add(prod.LHS, la, int32(prod.Serial))
		}
		if first.Contains(pcc.Epsilon) {
			for _, la := range p.analysis.follow[prod.LHS].Terminals() {
				t.add(prod.LHS, la, int32(prod.Serial))
			}
		}
	}
	if t.HasConflicts() {
		tracer().Errorf("prediction table holds %d conflicting entries", t.conflicts.Size())
	}
	return t
}

// add registers a production for cell (nt, la). An occupied cell keeps its
// entry; the collision is recorded.
func (t *Table) add(nt pcc.Nonterminal, la pcc.Terminal, serial int32) {
	i, ok := t.rows[nt]
	if !ok {
		panic(fmt.Sprintf("ll.Table.add() with unknown nonterminal %s", nt.Name))
	}
	j, ok := t.cols[la]
	if !ok {
		panic(fmt.Sprintf("ll.Table.add() with unknown terminal %s", la.Name))
	}
	have := t.matrix.Value(i, j)
	if have == serial {
		return // same production, e.g. via FIRST and FOLLOW both
	}
	if have != t.matrix.NullValue() {
		c := conflict{nt: nt, la: la, first: have, second: serial}
		tracer().Debugf("production %d is 2nd entry at (%s,%s)", serial, nt.Name, la.Name)
		t.conflicts.Add(c)
	}
	t.matrix.Add(i, j, serial)
}

// Lookup returns the production to derive nonterminal nt on lookahead la,
// or nil for an empty cell. For a conflicting cell the first registered
// production wins.
func (t *Table) Lookup(nt pcc.Nonterminal, la pcc.Terminal) *Production {
	i, ok := t.rows[nt]
	if !ok {
		return nil
	}
	j, ok := t.cols[la]
	if !ok {
		return nil
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil
	}
	return t.prods[v]
}

// HasConflicts reports whether any cell received more than one production.
// LL(1) validation rules conflicts out, so this is always false for tables
// built by Finalize.
func (t *Table) HasConflicts() bool {
	return t.conflicts.Size() > 0
}

// Dump logs all occupied cells of the table, for debugging purposes.
func (t *Table) Dump() {
	for nt, i := range t.rows {
		for la, j := range t.cols {
			if v := t.matrix.Value(i, j); v != t.matrix.NullValue() {
				tracer().Debugf("(%s,%s) -> %v", nt.Name, la.Name, t.prods[v])
			}
		}
	}
	it := t.conflicts.Iterator()
	for it.Next() {
		tracer().Debugf("%v", it.Value())
	}
}

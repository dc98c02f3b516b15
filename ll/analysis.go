package ll

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/eblume/pcc"
)

// --- FIRST and FOLLOW ------------------------------------------------------

// analysis holds the FIRST and FOLLOW sets of a grammar. FOLLOW sets are
// computed once for all nonterminals, during Finalize; FIRST sets are
// computed per symbol string on demand and memoized. Entries, once
// computed, never change.
type analysis struct {
	p      *Parser
	first  map[string]*TerminalSet // FIRST per symbol string, by structural key
	follow map[pcc.Nonterminal]*TerminalSet
}

func newAnalysis(p *Parser) *analysis {
	a := &analysis{
		p:      p,
		first:  make(map[string]*TerminalSet),
		follow: make(map[pcc.Nonterminal]*TerminalSet),
	}
	for nt := range p.derivations {
		a.follow[nt] = newTerminalSet()
	}
	return a
}

// ssKey is the memoization key of a symbol string: a structural dump over
// the symbol values, so equal strings share one key regardless of
// identity.
func ssKey(ss pcc.SymbolString) string {
	return string(structhash.Dump(struct{ Symbols pcc.SymbolString }{ss}, 1))
}

// firstOf computes the FIRST set of a symbol string: every terminal which
// can begin a derivation of it, plus Epsilon if it derives the empty
// string. Termination relies on the grammar not being left-recursive;
// on a left-recursive grammar the recursion does not bottom out.
func (a *analysis) firstOf(ss pcc.SymbolString) *TerminalSet {
	key := ssKey(ss)
	if s, ok := a.first[key]; ok {
		return s
	}
	var s *TerminalSet
	if len(ss) == 1 {
		switch sym := ss[0].(type) {
		case pcc.Terminal:
			s = newTerminalSet(sym)
		case pcc.Nonterminal:
			s = a.firstOfNonterminal(sym)
		}
	} else {
		s = a.firstOfString(ss)
	}
	a.first[key] = s
	return s
}

// firstOfNonterminal unions FIRST over all right-hand sides of the
// nonterminal. An epsilon production contributes Epsilon.
func (a *analysis) firstOfNonterminal(nt pcc.Nonterminal) *TerminalSet {
	s := newTerminalSet()
	for _, prod := range a.p.derivations[nt] {
		s.union(a.firstOf(prod.RHS))
	}
	return s
}

// firstOfString walks a symbol string left to right, accumulating each
// symbol's FIRST set without Epsilon, and stops at the first symbol which
// cannot derive the empty string. If there is no such symbol, the whole
// string is nullable and Epsilon joins the result.
func (a *analysis) firstOfString(ss pcc.SymbolString) *TerminalSet {
	s := newTerminalSet()
	nullable := true
	for _, sym := range ss {
		f := a.firstOf(pcc.SymbolString{sym})
		s.unionWithoutEpsilon(f)
		if !f.Contains(pcc.Epsilon) {
			nullable = false
			break
		}
	}
	if nullable {
		s.add(pcc.Epsilon)
	}
	return s
}

// computeFollow computes the FOLLOW sets of all nonterminals at once, as a
// monotone fixed point: sets only ever grow, and the iteration stops on
// the first pass which adds nothing. The start symbol's FOLLOW set is
// seeded with EOF; the start production's implicit trailing EOF plays no
// other role here.
//
// Epsilon can never be a member of a FOLLOW set. Finding it there after
// the fixed point is a defect of this package and panics.
func (a *analysis) computeFollow() {
	a.follow[a.p.start.LHS].add(pcc.EOF)
	for {
		grew := false
		for _, prod := range a.p.productions {
			for i, sym := range prod.RHS {
				nt, ok := sym.(pcc.Nonterminal)
				if !ok {
					continue
				}
				if i < len(prod.RHS)-1 {
					suffix := a.firstOf(prod.RHS[i+1:])
					if a.follow[nt].unionWithoutEpsilon(suffix) {
						grew = true
					}
					if !suffix.Contains(pcc.Epsilon) {
						continue
					}
				}
				// nt is rightmost, or the suffix behind it is nullable
				if a.follow[nt].unionWithoutEpsilon(a.follow[prod.LHS]) {
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}
	for nt, s := range a.follow {
		if s.Contains(pcc.Epsilon) {
			panic(fmt.Sprintf("ll: epsilon in FOLLOW(%s)", nt.Name))
		}
	}
}

// --- LL(1) validation ------------------------------------------------------

// validate checks that the grammar is LL(1): for every nonterminal, the
// FIRST sets of its productions must be pairwise disjoint, and if one
// production of a pair is nullable, the other production's FIRST set must
// additionally be disjoint from the nonterminal's FOLLOW set.
func (p *Parser) validate() error {
	for i, r1 := range p.productions {
		for _, r2 := range p.productions[i+1:] {
			if r1.LHS != r2.LHS {
				continue
			}
			if err := p.checkDisjoint(r1, r2); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Parser) checkDisjoint(r1, r2 *Production) error {
	f1 := p.analysis.firstOf(r1.RHS)
	f2 := p.analysis.firstOf(r2.RHS)
	if !f1.disjoint(f2) {
		return &GrammarError{
			Symbol: r1.LHS.Name,
			Reason: fmt.Sprintf("ambiguous derivation: FIRST sets of productions %d and %d overlap",
				r1.Serial, r2.Serial),
		}
	}
	follow := p.analysis.follow[r1.LHS]
	if f1.Contains(pcc.Epsilon) && !f2.disjoint(follow) {
		return p.nullableClash(r1, r2)
	}
	if f2.Contains(pcc.Epsilon) && !f1.disjoint(follow) {
		return p.nullableClash(r2, r1)
	}
	return nil
}

func (p *Parser) nullableClash(nullable, other *Production) error {
	return &GrammarError{
		Symbol: nullable.LHS.Name,
		Reason: fmt.Sprintf(
			"ambiguous derivation: production %d is nullable and FIRST of production %d overlaps FOLLOW(%s)",
			nullable.Serial, other.Serial, nullable.LHS.Name),
	}
}

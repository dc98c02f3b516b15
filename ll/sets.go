package ll

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/eblume/pcc"
)

// --- Terminal sets ---------------------------------------------------------

// Terminal sets are kept ordered. The comparator makes iteration, and with
// it table construction and error messages, deterministic.
func terminalComparator(a, b interface{}) int {
	t1 := a.(pcc.Terminal)
	t2 := b.(pcc.Terminal)
	if c := utils.StringComparator(t1.Name, t2.Name); c != 0 {
		return c
	}
	if c := utils.StringComparator(t1.Pattern, t2.Pattern); c != 0 {
		return c
	}
	return utils.IntComparator(b2i(t1.Silent), b2i(t2.Silent))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// TerminalSet is an ordered set of terminals. FIRST and FOLLOW sets are
// terminal sets; FIRST sets may contain Epsilon, FOLLOW sets never do.
type TerminalSet struct {
	set *treeset.Set
}

func newTerminalSet(terms ...pcc.Terminal) *TerminalSet {
	s := &TerminalSet{set: treeset.NewWith(terminalComparator)}
	for _, t := range terms {
		s.set.Add(t)
	}
	return s
}

// Contains reports whether t is a member of the set.
func (s *TerminalSet) Contains(t pcc.Terminal) bool {
	return s.set.Contains(t)
}

// Size returns the number of terminals in the set.
func (s *TerminalSet) Size() int {
	return s.set.Size()
}

// Terminals returns the members of the set, ordered by name.
func (s *TerminalSet) Terminals() []pcc.Terminal {
	terms := make([]pcc.Terminal, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		terms = append(terms, it.Value().(pcc.Terminal))
	}
	return terms
}

func (s *TerminalSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	it := s.set.Iterator()
	for it.Next() {
		if b.Len() > 1 {
			b.WriteString(" ")
		}
		b.WriteString(it.Value().(pcc.Terminal).Name)
	}
	b.WriteString("}")
	return b.String()
}

func (s *TerminalSet) add(t pcc.Terminal) {
	s.set.Add(t)
}

// union adds all members of other and reports whether the set grew.
func (s *TerminalSet) union(other *TerminalSet) bool {
	grew := false
	it := other.set.Iterator()
	for it.Next() {
		if !s.set.Contains(it.Value()) {
			s.set.Add(it.Value())
			grew = true
		}
	}
	return grew
}

// unionWithoutEpsilon adds all members of other except Epsilon and reports
// whether the set grew.
func (s *TerminalSet) unionWithoutEpsilon(other *TerminalSet) bool {
	grew := false
	it := other.set.Iterator()
	for it.Next() {
		t := it.Value().(pcc.Terminal)
		if t == pcc.Epsilon {
			continue
		}
		if !s.set.Contains(t) {
			s.set.Add(t)
			grew = true
		}
	}
	return grew
}

// disjoint reports whether the two sets have no member in common.
func (s *TerminalSet) disjoint(other *TerminalSet) bool {
	it := s.set.Iterator()
	for it.Next() {
		if other.set.Contains(it.Value()) {
			return false
		}
	}
	return true
}

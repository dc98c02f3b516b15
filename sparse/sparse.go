/*
Package sparse implements a simple type for sparse integer matrices.
It backs the LL(1) prediction tables: rows are nonterminals, columns are
lookahead terminals, and the stored integers are production numbers.
Every entry in the matrix is either a single int32 or a pair (int32,int32);
the second slot of a pair exists to hold on to conflicting table entries.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/
package sparse

import (
	"fmt"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 7)                 // set a value
//     v := M.Value(2, 3)             // returns 7
//     M.Add(2, 3, 8)                 // add a second value at the position
//     v = M.Value(2, 3)              // still returns 7, the primary value
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Space for null-values is not re-claimed.
type IntMatrix struct {
	entries []entry
	rowcnt  int
	colcnt  int
	nullval int32
}

// Entries are stored as sorted (row, col, value) triplets.
type entry struct {
	row, col int
	value    pair
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is
// a null-value, indicating empty entries (use DefaultNullValue if you
// haven't any specific requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		entries: []entry{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of occupied positions in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.entries)
}

// Value returns the primary value at position (i,j), or NullValue. The
// primary value of a pair is the one stored first.
func (m *IntMatrix) Value(i, j int) int32 {
	for _, e := range m.entries {
		if !e.storedLeftOf(i, j) { // have skipped all lesser indices
			if e.storedAt(i, j) {
				return e.value.a
			}
			break
		}
	}
	return m.nullval
}

// Values returns the pair of values at position (i,j), or
// (NullValue, NullValue).
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	for _, e := range m.entries {
		if !e.storedLeftOf(i, j) { // have skipped all lesser indices
			if e.storedAt(i, j) {
				return e.value.a, e.value.b
			}
			break
		}
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j), overwriting any values
// present.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value in the matrix at position (i,j). An occupied position keeps
// its primary value; the new value goes to the second slot.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *IntMatrix) setOrAdd(i, j int, value int32, doAdd bool) *IntMatrix {
	at := 0 // will be position of new entry
	for k, e := range m.entries {
		if !e.storedLeftOf(i, j) { // have skipped all lesser indices
			if e.storedAt(i, j) { // value already present
				if doAdd {
					v := m.entries[k].value
					m.entries[k].value = v.fillWith(value, m.nullval)
				} else {
					m.entries[k].value = pair{value, m.nullval}
				}
				return m // and done
			}
			break // no old value present
		}
		at++
	}
	enew := entry{row: i, col: j, value: pair{value, m.nullval}}
	// the following 3 lines have to work for at being the right edge or not
	m.entries = append(m.entries, enew)      // make room
	copy(m.entries[at+1:], m.entries[at:])   // move greater entries one to the right
	m.entries[at] = enew                     // if not append-case: insert new entry
	return m
}

func (e *entry) storedLeftOf(i, j int) bool {
	return e.row < i || e.row == i && e.col < j
}

func (e *entry) storedAt(i, j int) bool {
	return (e.row == i && e.col == j)
}

// We store up to 2 int32 in one position. a is the primary value.
type pair struct {
	a int32
	b int32
}

func (pr pair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}

// fillWith stores n in the first free slot of the pair. The primary value,
// once set, is never displaced; a full pair has its second slot
// overwritten.
func (pr pair) fillWith(n int32, nullval int32) pair {
	if pr.a == nullval {
		pr.a = n
	} else if pr.b == nullval {
		pr.b = n
	} else {
		// entry is full. what to do?
		pr.b = n // overwrite second
	}
	return pr
}

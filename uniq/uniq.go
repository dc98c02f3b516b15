/*
Package uniq generates short names which are guaranteed to be absent from a
given set of taken names. The LL(1) grammar builder uses it to mint internal
terminal names for quoted literals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Erich Blume <blume.erich@gmail.com>

*/
package uniq

import (
	"bytes"
	"fmt"
)

// Config controls name generation. The zero value generates 6 lowercase
// letters: a Length of 0 means 6, and if no character class is selected,
// lowercase letters are drawn.
type Config struct {
	Length int    // number of generated characters
	Lower  bool   // draw from 'a'…'z'
	Upper  bool   // draw from 'A'…'Z'
	Digits bool   // draw from '0'…'9'
	Prefix string // fixed prefix, not counted by Length
	Suffix string // fixed suffix, not counted by Length
}

// String returns a name of the form prefix + generated + suffix for which
// taken returns false. Candidates are enumerated in lexicographic order
// over the configured character classes, so results are deterministic for
// a given taken set. If every candidate is taken, an error is returned.
func String(taken func(string) bool, cfg Config) (string, error) {
	chars := charset(cfg)
	length := cfg.Length
	if length == 0 {
		length = 6
	}
	idx := make([]int, length)
	for {
		var b bytes.Buffer
		b.WriteString(cfg.Prefix)
		for _, i := range idx {
			b.WriteByte(chars[i])
		}
		b.WriteString(cfg.Suffix)
		if name := b.String(); !taken(name) {
			return name, nil
		}
		// advance the rightmost position first, odometer-style
		i := length - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(chars) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return "", fmt.Errorf("name space of %d characters exhausted", length)
		}
	}
}

func charset(cfg Config) []byte {
	var chars []byte
	if cfg.Lower || (!cfg.Upper && !cfg.Digits) {
		for c := byte('a'); c <= 'z'; c++ {
			chars = append(chars, c)
		}
	}
	if cfg.Upper {
		for c := byte('A'); c <= 'Z'; c++ {
			chars = append(chars, c)
		}
	}
	if cfg.Digits {
		for c := byte('0'); c <= '9'; c++ {
			chars = append(chars, c)
		}
	}
	return chars
}

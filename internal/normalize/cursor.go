// Package normalize produces the normalized form of APFS filenames and the
// packed name hash stored in hashed directory entry keys.
//
// On disk, a directory entry key stores a 22-bit CRC32C of the filename's
// canonically decomposed (and, on case-insensitive volumes, case-folded)
// Unicode scalar values, packed together with the 10-bit length of the raw
// UTF-8 name. The checker recomputes that hash to validate the stored one.
package normalize

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Cursor is a lazy iterator over the normalized Unicode scalar values of a
// filename. Each step decodes the next source rune, applies canonical
// decomposition, and, when case folding is enabled, folds every resulting
// scalar. One source rune can therefore yield several output scalars.
//
// The source is the raw UTF-8 name without its on-disk null terminator;
// iteration stops at the end of the source, at an embedded null byte, or at
// a malformed byte sequence.
type Cursor struct {
	src      []byte
	off      int
	caseFold bool
	caser    cases.Caser
	pending  []rune
}

// NewCursor returns a cursor over name. When caseFold is true the produced
// scalars are case-folded after decomposition.
func NewCursor(name []byte, caseFold bool) *Cursor {
	c := &Cursor{src: name, caseFold: caseFold}
	if caseFold {
		c.caser = cases.Fold()
	}
	return c
}

// Reset restarts the cursor from the beginning of the source.
func (c *Cursor) Reset() {
	c.off = 0
	c.pending = c.pending[:0]
}

// Next returns the next normalized scalar value. The second return value is
// false once the source is exhausted.
func (c *Cursor) Next() (rune, bool) {
	if len(c.pending) > 0 {
		r := c.pending[0]
		c.pending = c.pending[1:]
		return r, true
	}

	if c.off >= len(c.src) || c.src[c.off] == 0 {
		return 0, false
	}

	r, size := utf8.DecodeRune(c.src[c.off:])
	if r == utf8.RuneError && size == 1 {
		// A malformed byte sequence ends the name, like a terminator;
		// the invalid bytes don't count as consumed.
		return 0, false
	}
	c.off += size

	decomposed := norm.NFD.String(string(r))
	if c.caseFold {
		decomposed = c.caser.String(decomposed)
	}
	for _, d := range decomposed {
		c.pending = append(c.pending, d)
	}

	// Decomposition of a valid scalar never yields nothing, but guard
	// against an empty expansion by moving on to the next source rune.
	if len(c.pending) == 0 {
		return c.Next()
	}

	r = c.pending[0]
	c.pending = c.pending[1:]
	return r, true
}

// BytesConsumed returns the number of source bytes read so far, not counting
// the on-disk null terminator.
func (c *Cursor) BytesConsumed() int {
	return c.off
}

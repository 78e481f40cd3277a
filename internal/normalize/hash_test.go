package normalize

import (
	"testing"
)

func TestDrecHashKnownValue(t *testing.T) {
	// Packed field for "hello" on a case-sensitive volume: low 10 bits are
	// the name length counting the terminator, bits 10-31 the hash.
	got := DrecHash([]byte("hello"), false)
	if got != 0xc7aecc06 {
		t.Errorf("expected packed hash 0xc7aecc06, got 0x%08x", got)
	}
	if got&0x3FF != 6 {
		t.Errorf("expected length bits 6, got %d", got&0x3FF)
	}
}

func TestDrecHashDeterminism(t *testing.T) {
	names := []string{"", "a", "hello", "straße", "ファイル", "mixedCASE.txt"}
	for _, name := range names {
		for _, caseFold := range []bool{false, true} {
			first := DrecHash([]byte(name), caseFold)
			for i := 0; i < 3; i++ {
				if got := DrecHash([]byte(name), caseFold); got != first {
					t.Errorf("DrecHash(%q, %v) not deterministic: 0x%08x then 0x%08x",
						name, caseFold, first, got)
				}
			}
		}
	}
}

func TestDrecHashCaseFolding(t *testing.T) {
	upper := DrecHash([]byte("README"), true)
	lower := DrecHash([]byte("readme"), true)
	if upper != lower {
		t.Errorf("case-folded hashes differ: 0x%08x vs 0x%08x", upper, lower)
	}
	if upper != 0x7e01d807 {
		t.Errorf("expected packed hash 0x7e01d807, got 0x%08x", upper)
	}

	if DrecHash([]byte("README"), false) == DrecHash([]byte("readme"), false) {
		t.Error("case-sensitive hashes should differ between README and readme")
	}
}

func TestDrecHashNormalization(t *testing.T) {
	// U+00E9 decomposes to U+0065 U+0301; both spellings must hash the
	// same scalars. Only the raw byte length differs.
	composed := DrecHash([]byte("é"), false)
	decomposed := DrecHash([]byte("é"), false)

	if composed>>10 != decomposed>>10 {
		t.Errorf("hash bits differ between composed (0x%08x) and decomposed (0x%08x)",
			composed, decomposed)
	}
	if composed&0x3FF != 3 {
		t.Errorf("expected composed length 3, got %d", composed&0x3FF)
	}
	if decomposed&0x3FF != 4 {
		t.Errorf("expected decomposed length 4, got %d", decomposed&0x3FF)
	}
	if composed != 0x75d97c03 {
		t.Errorf("expected packed hash 0x75d97c03, got 0x%08x", composed)
	}
}

func TestCursorYieldsDecomposedScalars(t *testing.T) {
	cursor := NewCursor([]byte("é"), false)

	r, ok := cursor.Next()
	if !ok || r != 'e' {
		t.Fatalf("expected first scalar 'e', got %q (ok=%v)", r, ok)
	}
	r, ok = cursor.Next()
	if !ok || r != 0x0301 {
		t.Fatalf("expected combining acute, got U+%04X (ok=%v)", r, ok)
	}
	if _, ok = cursor.Next(); ok {
		t.Error("expected cursor to be exhausted")
	}
	if cursor.BytesConsumed() != 2 {
		t.Errorf("expected 2 source bytes consumed, got %d", cursor.BytesConsumed())
	}
}

func TestCursorRestart(t *testing.T) {
	collect := func(c *Cursor) []rune {
		var out []rune
		for {
			r, ok := c.Next()
			if !ok {
				return out
			}
			out = append(out, r)
		}
	}

	cursor := NewCursor([]byte("Straße"), true)
	first := collect(cursor)
	cursor.Reset()
	second := collect(cursor)

	if len(first) == 0 {
		t.Fatal("expected scalars from non-empty name")
	}
	if len(first) != len(second) {
		t.Fatalf("restart changed scalar count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("scalar %d differs after restart: U+%04X vs U+%04X", i, first[i], second[i])
		}
	}
}

func TestDrecHashStopsAtInvalidUTF8(t *testing.T) {
	// A malformed sequence ends the name: only "ab" is hashed, and the
	// length bits count the two consumed bytes plus the terminator.
	truncated := DrecHash([]byte("ab\xffcd"), false)
	clean := DrecHash([]byte("ab"), false)

	if truncated>>10 != clean>>10 {
		t.Errorf("hash bits differ: 0x%08x vs 0x%08x", truncated, clean)
	}
	if truncated&0x3FF != 3 {
		t.Errorf("expected length bits 3, got %d", truncated&0x3FF)
	}
}

func TestCursorStopsAtInvalidUTF8(t *testing.T) {
	cursor := NewCursor([]byte("a\x80z"), false)

	r, ok := cursor.Next()
	if !ok || r != 'a' {
		t.Fatalf("expected scalar 'a', got %q (ok=%v)", r, ok)
	}
	if _, ok = cursor.Next(); ok {
		t.Error("expected cursor to stop at the malformed byte")
	}
	if cursor.BytesConsumed() != 1 {
		t.Errorf("expected 1 byte consumed, got %d", cursor.BytesConsumed())
	}
}

func TestCursorStopsAtNull(t *testing.T) {
	cursor := NewCursor([]byte("ab\x00cd"), false)
	var n int
	for {
		if _, ok := cursor.Next(); !ok {
			break
		}
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 scalars before the null byte, got %d", n)
	}
	if cursor.BytesConsumed() != 2 {
		t.Errorf("expected 2 bytes consumed, got %d", cursor.BytesConsumed())
	}
}

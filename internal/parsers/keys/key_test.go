package keys

import (
	"testing"

	"github.com/deploymenttheory/go-apfsck/internal/types"
)

func TestCompareTotalOrder(t *testing.T) {
	// Strictly ascending in the canonical tree order.
	ordered := []Key{
		{ID: 1, Kind: types.ApfsTypeInode},
		{ID: 1, Kind: types.ApfsTypeFileExtent, Number: 0},
		{ID: 1, Kind: types.ApfsTypeFileExtent, Number: 0x1000},
		{ID: 1, Kind: types.ApfsTypeDirRec, Number: 5, Name: []byte("alpha")},
		{ID: 1, Kind: types.ApfsTypeDirRec, Number: 5, Name: []byte("beta")},
		{ID: 1, Kind: types.ApfsTypeDirRec, Number: 6, Name: []byte("alpha")},
		{ID: 2, Kind: types.ApfsTypeInode},
		{ID: 2, Kind: types.ApfsTypeXattr, Name: []byte("com.apple.fileutil")},
	}

	for i, a := range ordered {
		if Compare(a, a) != 0 {
			t.Errorf("key %d not equal to itself", i)
		}
		for j, b := range ordered {
			got := Compare(a, b)
			switch {
			case i < j && got >= 0:
				t.Errorf("expected key %d < key %d, got %d", i, j, got)
			case i > j && got <= 0:
				t.Errorf("expected key %d > key %d, got %d", i, j, got)
			case i == j && got != 0:
				t.Errorf("expected key %d == key %d, got %d", i, j, got)
			}
			// Antisymmetry
			if rev := Compare(b, a); (got < 0) != (rev > 0) || (got == 0) != (rev == 0) {
				t.Errorf("Compare(%d,%d)=%d but Compare(%d,%d)=%d", i, j, got, j, i, rev)
			}
		}
	}

	// Transitivity across every ordered triple.
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			for k := j + 1; k < len(ordered); k++ {
				if Compare(ordered[i], ordered[j]) < 0 &&
					Compare(ordered[j], ordered[k]) < 0 &&
					Compare(ordered[i], ordered[k]) >= 0 {
					t.Errorf("transitivity broken for keys %d, %d, %d", i, j, k)
				}
			}
		}
	}
}

func TestCompareNameIsRawBytes(t *testing.T) {
	// The tree order compares name bytes directly; the normalization used
	// for hashing plays no part here. U+00E9 and its decomposed spelling
	// are different names to the tree.
	a := Key{ID: 1, Kind: types.ApfsTypeDirRec, Number: 3, Name: []byte("é")}
	b := Key{ID: 1, Kind: types.ApfsTypeDirRec, Number: 3, Name: []byte("é")}

	if Compare(a, b) == 0 {
		t.Error("differently encoded names must not compare equal")
	}
}

func TestCompareNamelessKeys(t *testing.T) {
	a := Key{ID: 9, Kind: types.ApfsTypeInode}
	b := Key{ID: 9, Kind: types.ApfsTypeInode}
	if Compare(a, b) != 0 {
		t.Error("identical nameless keys must compare equal")
	}
}

func TestCompareOmapKeys(t *testing.T) {
	older := Key{ID: 0x500, Kind: types.ApfsTypeAny, Number: 5}
	newer := Key{ID: 0x500, Kind: types.ApfsTypeAny, Number: 9}
	if Compare(older, newer) >= 0 {
		t.Error("object map keys must order by transaction id")
	}
}

package index

import (
	"sort"
	"testing"

	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

func rowTuple(t *testing.T, id int64, label string) *tuple.Tuple {
	t.Helper()
	td, err := tuple.NewTupleDesc(
		[]types.Type{types.IntType, types.StringType},
		[]string{"id", "label"})
	if err != nil {
		t.Fatalf("NewTupleDesc: %v", err)
	}
	tup, err := tuple.FromFields(td, types.NewIntField(id), types.NewStringField(label))
	if err != nil {
		t.Fatalf("FromFields: %v", err)
	}
	return tup
}

// exerciseIndex drives any backend through the common contract:
// insert, miss, overwrite-returns-previous, Len, and All.
func exerciseIndex(t *testing.T, idx Index) {
	t.Helper()

	if _, ok := idx.Get(intKey(1)); ok {
		t.Fatal("empty index reported a hit")
	}

	first := rowTuple(t, 1, "one")
	if prev := idx.Put(intKey(1), first); prev != nil {
		t.Fatalf("fresh Put returned previous tuple %v", prev)
	}
	idx.Put(intKey(2), rowTuple(t, 2, "two"))
	idx.Put(intKey(3), rowTuple(t, 3, "three"))

	if idx.Len() != 3 {
		t.Fatalf("Len = %d, want 3", idx.Len())
	}

	got, ok := idx.Get(intKey(2))
	if !ok {
		t.Fatal("Get(2) missed")
	}
	if field, _ := got.GetField(1); field.String() != "two" {
		t.Errorf("Get(2) label = %s, want two", field)
	}

	replacement := rowTuple(t, 1, "uno")
	prev := idx.Put(intKey(1), replacement)
	if prev != first {
		t.Error("overwrite must return the previously mapped tuple")
	}
	if idx.Len() != 3 {
		t.Errorf("Len after overwrite = %d, want 3", idx.Len())
	}
	got, _ = idx.Get(intKey(1))
	if got != replacement {
		t.Error("Get after overwrite returned stale tuple")
	}

	if _, ok := idx.Get(intKey(42)); ok {
		t.Error("miss on absent key reported a hit")
	}

	entries := idx.All()
	if len(entries) != 3 {
		t.Fatalf("All returned %d entries, want 3", len(entries))
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e.Key.Canonical()] = true
	}
	for id := int64(1); id <= 3; id++ {
		if !seen[intKey(id).Canonical()] {
			t.Errorf("All is missing key (%d)", id)
		}
	}
}

func TestOrderedIndexContract(t *testing.T) {
	exerciseIndex(t, NewOrdered())
}

func TestStaticHashContract(t *testing.T) {
	exerciseIndex(t, NewStaticHash())
}

func TestStaticHashSingleBucket(t *testing.T) {
	// Degenerate bucket count forces every entry onto one chain.
	idx := NewStaticHashSized(1)
	for i := int64(0); i < 20; i++ {
		idx.Put(intKey(i), rowTuple(t, i, "x"))
	}
	for i := int64(0); i < 20; i++ {
		if _, ok := idx.Get(intKey(i)); !ok {
			t.Errorf("Get(%d) missed on single-chain index", i)
		}
	}
	if idx.Len() != 20 {
		t.Errorf("Len = %d, want 20", idx.Len())
	}
}

func TestOrderedIndexIterationOrder(t *testing.T) {
	idx := NewOrdered()
	ids := []int64{7, 3, 9, 1, 5}
	for _, id := range ids {
		idx.Put(intKey(id), rowTuple(t, id, "x"))
	}

	entries := idx.All()
	if len(entries) != len(ids) {
		t.Fatalf("All returned %d entries, want %d", len(entries), len(ids))
	}
	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Key.Compare(entries[j].Key) < 0
	}) {
		t.Error("ordered index must iterate in key order")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		expected Kind
		wantErr  bool
	}{
		{"none", KindNone, false},
		{"", KindNone, false},
		{"ordered", KindOrdered, false},
		{"tree", KindOrdered, false},
		{"hash", KindHash, false},
		{"linhash", KindLinear, false},
		{"linear", KindLinear, false},
		{"btree", 0, true},
	}

	for _, tt := range tests {
		kind, err := ParseKind(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q) expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.name, err)
			continue
		}
		if kind != tt.expected {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.name, kind, tt.expected)
		}
	}
}

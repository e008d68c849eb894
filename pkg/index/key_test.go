package index

import (
	"testing"

	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

func intKey(vals ...int64) CompositeKey {
	fields := make([]types.Field, len(vals))
	for i, v := range vals {
		fields[i] = types.NewIntField(v)
	}
	return NewCompositeKey(fields...)
}

func strKey(vals ...string) CompositeKey {
	fields := make([]types.Field, len(vals))
	for i, v := range vals {
		fields[i] = types.NewStringField(v)
	}
	return NewCompositeKey(fields...)
}

func TestCompositeKeyEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     CompositeKey
		expected bool
	}{
		{"equal single", intKey(1), intKey(1), true},
		{"unequal single", intKey(1), intKey(2), false},
		{"equal pair", strKey("Fox", "George"), strKey("Fox", "George"), true},
		{"unequal pair", strKey("Fox", "George"), strKey("Fox", "Sherry"), false},
		{"different lengths", intKey(1), intKey(1, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.expected {
				t.Errorf("Equals = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCompositeKeyCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     CompositeKey
		expected int
	}{
		{"equal", intKey(1, 2), intKey(1, 2), 0},
		{"first element decides", intKey(1, 9), intKey(2, 0), -1},
		{"second element decides", intKey(1, 2), intKey(1, 1), 1},
		{"prefix is smaller", intKey(1), intKey(1, 2), -1},
		{"string ordering", strKey("Rocky"), strKey("Star_Wars"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			switch {
			case tt.expected < 0 && got >= 0,
				tt.expected == 0 && got != 0,
				tt.expected > 0 && got <= 0:
				t.Errorf("Compare = %d, want sign of %d", got, tt.expected)
			}
		})
	}
}

func TestCompositeKeyHash(t *testing.T) {
	if intKey(7).Hash() != intKey(7).Hash() {
		t.Error("hash must be deterministic")
	}
	if intKey(7).Hash() == intKey(8).Hash() {
		t.Error("distinct keys should hash differently")
	}
	if strKey("Fox", "George").Canonical() == strKey("FoxGeorge").Canonical() {
		t.Error("canonical encoding must keep element boundaries distinct")
	}
}

func TestExtractKey(t *testing.T) {
	td, err := tuple.NewTupleDesc(
		[]types.Type{types.StringType, types.IntType, types.IntType},
		[]string{"title", "year", "length"})
	if err != nil {
		t.Fatalf("NewTupleDesc: %v", err)
	}
	tup, err := tuple.FromFields(td,
		types.NewStringField("Star_Wars"), types.NewIntField(1977), types.NewIntField(124))
	if err != nil {
		t.Fatalf("FromFields: %v", err)
	}

	key, err := ExtractKey(tup, []int{0})
	if err != nil {
		t.Fatalf("ExtractKey: %v", err)
	}
	if !key.Equals(strKey("Star_Wars")) {
		t.Errorf("extracted key = %s, want (Star_Wars)", key)
	}

	if _, err := ExtractKey(tup, []int{9}); err == nil {
		t.Error("expected error extracting out-of-bounds column")
	}
}

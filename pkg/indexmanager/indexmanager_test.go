package indexmanager

import (
	"testing"

	"relalg/pkg/index"
	"relalg/pkg/index/linearhash"
)

func TestNew(t *testing.T) {
	if New(index.KindNone) != nil {
		t.Error("KindNone must yield no index")
	}
	if _, ok := New(index.KindOrdered).(*index.Ordered); !ok {
		t.Error("KindOrdered must yield an ordered index")
	}
	if _, ok := New(index.KindHash).(*index.StaticHash); !ok {
		t.Error("KindHash must yield a static hash index")
	}
	if _, ok := New(index.KindLinear).(*linearhash.LinearHash); !ok {
		t.Error("KindLinear must yield a linear-hash index")
	}
}

package relation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relalg/pkg/index"
	"relalg/pkg/types"
)

func str(s string) types.Field { return types.NewStringField(s) }
func i64(v int64) types.Field  { return types.NewIntField(v) }

// movieRelation builds the movie relation preloaded with two rows.
func movieRelation(t *testing.T, kind index.Kind) *Relation {
	t.Helper()
	r, err := Parse("movie", "title year length", "String Integer Integer", "title", kind)
	require.NoError(t, err)
	require.NoError(t, r.Insert(str("Star_Wars"), i64(1977), i64(124)))
	require.NoError(t, r.Insert(str("Rocky"), i64(1985), i64(200)))
	return r
}

func TestParse(t *testing.T) {
	r := movieRelation(t, index.KindLinear)
	require.Equal(t, "movie", r.Name())
	require.Equal(t, []string{"title", "year", "length"}, r.Schema().FieldNames)
	require.Equal(t, []string{"title"}, r.Key())
	require.Equal(t, index.KindLinear, r.IndexKind())
	require.Equal(t, 2, r.Len())
}

func TestParseRejectsBadDeclarations(t *testing.T) {
	tests := []struct {
		name       string
		attributes string
		domains    string
		key        string
	}{
		{"arity mismatch", "title year", "String", "title"},
		{"unknown domain", "title", "Varchar", "title"},
		{"key outside schema", "title year", "String Integer", "length"},
		{"duplicate attributes", "title title", "String String", "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad", tt.attributes, tt.domains, tt.key, index.KindNone)
			require.Error(t, err)
		})
	}
}

func TestInsertFailureLeavesRelationUntouched(t *testing.T) {
	r := movieRelation(t, index.KindLinear)
	before := r.Len()
	idxBefore := r.Index().Len()

	require.Error(t, r.Insert(str("Short_Row")), "arity too short must fail")
	require.Error(t, r.Insert(i64(1999), str("Swapped"), i64(90)), "domain mismatch must fail")

	require.Equal(t, before, r.Len())
	require.Equal(t, idxBefore, r.Index().Len())
}

func TestDuplicateKeyKeepsBothTuplesOverwritesIndex(t *testing.T) {
	r := movieRelation(t, index.KindHash)
	require.NoError(t, r.Insert(str("Rocky"), i64(1990), i64(180)))

	require.Equal(t, 3, r.Len(), "the bag keeps both Rocky rows")
	require.Equal(t, 2, r.Index().Len(), "the index keeps one entry per key")

	got, ok := r.Index().Get(index.NewCompositeKey(str("Rocky")))
	require.True(t, ok)
	year, err := got.GetField(1)
	require.NoError(t, err)
	require.Equal(t, "1990", year.String(), "the later row wins the index entry")
}

func TestColSentinel(t *testing.T) {
	r := movieRelation(t, index.KindNone)
	require.Equal(t, 0, r.Col("title"))
	require.Equal(t, 2, r.Col("length"))
	require.Equal(t, -1, r.Col("director"))
}

func TestTuplesReturnsCopy(t *testing.T) {
	r := movieRelation(t, index.KindNone)
	tuples := r.Tuples()
	tuples[0] = nil
	require.NotNil(t, r.Tuples()[0], "mutating the returned slice must not touch the relation")
}

func TestInsertTupleSchemaCheck(t *testing.T) {
	movies := movieRelation(t, index.KindNone)
	studio, err := Parse("studio", "name address presidentName",
		"String String String", "name", index.KindNone)
	require.NoError(t, err)
	require.NoError(t, studio.Insert(str("Fox"), str("Los_Angeles"), str("George")))

	require.Error(t, movies.InsertTuple(studio.Tuples()[0]))
	require.NoError(t, movies.InsertTuple(movies.Tuples()[0]))
}

func TestDerivedRelationNaming(t *testing.T) {
	r := movieRelation(t, index.KindNone)

	p1, err := r.Project("title")
	require.NoError(t, err)
	p2, err := r.Project("year")
	require.NoError(t, err)
	require.Equal(t, "movie0", p1.Name())
	require.Equal(t, "movie1", p2.Name())

	// Chained derivations share the counter of the whole derivation tree.
	p3, err := p1.Project("title")
	require.NoError(t, err)
	require.Equal(t, "movie02", p3.Name())
}

func TestNamerSeed(t *testing.T) {
	n := NewNamer()
	n.Seed(10)
	require.Equal(t, "rel10", n.Next("rel"))
	require.Equal(t, "rel11", n.Next("rel"))
}

package relation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relalg/pkg/index"
)

// studioRelation builds the studio relation preloaded with two rows.
// Its name attribute pairs with movie rows through studioName.
func studioRelation(t *testing.T, kind index.Kind) *Relation {
	t.Helper()
	r, err := Parse("studio", "name address presidentName", "String String String", "name", kind)
	require.NoError(t, err)
	require.NoError(t, r.Insert(str("Fox"), str("Los_Angeles"), str("George")))
	require.NoError(t, r.Insert(str("Universal"), str("Universal_City"), str("Sid")))
	return r
}

// movieStudioRelation is the movie schema extended with a studioName
// foreign attribute.
func movieStudioRelation(t *testing.T, kind index.Kind) *Relation {
	t.Helper()
	r, err := Parse("movieStudio", "title year length studioName",
		"String Integer Integer String", "title", kind)
	require.NoError(t, err)
	require.NoError(t, r.Insert(str("Star_Wars"), i64(1977), i64(124), str("Fox")))
	require.NoError(t, r.Insert(str("Rocky"), i64(1985), i64(200), str("Universal")))
	require.NoError(t, r.Insert(str("Rambo"), i64(1978), i64(100), str("Orion")))
	return r
}

func TestEquiJoin(t *testing.T) {
	movies := movieStudioRelation(t, index.KindLinear)
	studios := studioRelation(t, index.KindLinear)

	j, err := movies.Join("studioName", "name", studios)
	require.NoError(t, err)

	// The match column on the right is dropped; the rest survives.
	require.Equal(t,
		[]string{"title", "year", "length", "studioName", "address", "presidentName"},
		j.Schema().FieldNames)
	require.Equal(t, 2, j.Len(), "Orion has no studio row")
	require.Equal(t, []string{"title"}, j.Key(), "the receiver's key carries over")

	first := j.Tuples()[0]
	title, err := first.GetField(0)
	require.NoError(t, err)
	require.Equal(t, "Star_Wars", title.String())
	president, err := first.GetField(5)
	require.NoError(t, err)
	require.Equal(t, "George", president.String())
}

func TestEquiJoinNameCollision(t *testing.T) {
	a, err := Parse("a", "id name", "Integer String", "id", index.KindNone)
	require.NoError(t, err)
	require.NoError(t, a.Insert(i64(1), str("left")))
	b, err := Parse("b", "owner name", "Integer String", "owner", index.KindNone)
	require.NoError(t, err)
	require.NoError(t, b.Insert(i64(1), str("right")))

	j, err := a.Join("id", "owner", b)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "name2"}, j.Schema().FieldNames,
		"a surviving right attribute colliding with the left gets a 2 suffix")

	row := j.Tuples()[0]
	left, err := row.GetField(1)
	require.NoError(t, err)
	require.Equal(t, "left", left.String())
	right, err := row.GetField(2)
	require.NoError(t, err)
	require.Equal(t, "right", right.String())
}

func TestEquiJoinErrors(t *testing.T) {
	movies := movieStudioRelation(t, index.KindNone)
	studios := studioRelation(t, index.KindNone)

	_, err := movies.Join("", "", studios)
	require.ErrorIs(t, err, ErrMalformedCondition)
	_, err = movies.Join("studioName title", "name", studios)
	require.ErrorIs(t, err, ErrMalformedCondition)
	_, err = movies.Join("producer", "name", studios)
	require.ErrorIs(t, err, ErrAttributeNotFound)
	_, err = movies.Join("studioName", "ceo", studios)
	require.ErrorIs(t, err, ErrAttributeNotFound)
}

func TestIndexJoinMatchesNestedLoop(t *testing.T) {
	movies := movieStudioRelation(t, index.KindLinear)
	studios := studioRelation(t, index.KindLinear)

	nested, err := movies.Join("studioName", "name", studios)
	require.NoError(t, err)
	probed, err := movies.IndexJoin("studioName", "name", studios)
	require.NoError(t, err)

	require.Equal(t, nested.Schema().FieldNames, probed.Schema().FieldNames)
	require.Equal(t, fingerprints(nested), fingerprints(probed))
}

func TestIndexJoinFallsBackWithoutUsableIndex(t *testing.T) {
	movies := movieStudioRelation(t, index.KindLinear)
	studios := studioRelation(t, index.KindLinear)

	// presidentName is not the studio key, so the probe path does not
	// apply and the nested loop answers instead.
	j, err := movies.IndexJoin("studioName", "presidentName", studios)
	require.NoError(t, err)
	require.Equal(t, 0, j.Len())
}

func TestThetaJoin(t *testing.T) {
	movies := movieRelation(t, index.KindNone)
	sequels, err := Parse("sequel", "title year length", "String Integer Integer", "title", index.KindNone)
	require.NoError(t, err)
	require.NoError(t, sequels.Insert(str("Rocky_II"), i64(1979), i64(119)))

	// The condition names the right attribute as declared in sequels;
	// the 2 suffix applies to the output schema only.
	j, err := movies.JoinOn("year < year", sequels)
	require.NoError(t, err)

	// Theta-join keeps the full concatenation, colliding names suffixed.
	require.Equal(t,
		[]string{"title", "year", "length", "title2", "year2", "length2"},
		j.Schema().FieldNames)
	require.Equal(t, 1, j.Len(), "only Star_Wars (1977) predates Rocky_II (1979)")

	title, err := j.Tuples()[0].GetField(0)
	require.NoError(t, err)
	require.Equal(t, "Star_Wars", title.String())
}

func TestThetaJoinOperators(t *testing.T) {
	movies := movieRelation(t, index.KindNone)
	others := movieRelation(t, index.KindNone)

	tests := []struct {
		condition string
		expected  int
	}{
		{"year = year", 2},
		{"year != year", 2},
		{"year <= year", 3},
		{"length > length", 1},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			j, err := movies.JoinOn(tt.condition, others)
			require.NoError(t, err)
			require.Equal(t, tt.expected, j.Len())
		})
	}
}

func TestThetaJoinMalformedCondition(t *testing.T) {
	movies := movieRelation(t, index.KindNone)
	_, err := movies.JoinOn("year <", movies)
	require.ErrorIs(t, err, ErrMalformedCondition)
}

func TestNaturalJoinCommonAttributes(t *testing.T) {
	movies := movieRelation(t, index.KindLinear)
	ratings, err := Parse("rating", "title stars", "String Integer", "title", index.KindLinear)
	require.NoError(t, err)
	require.NoError(t, ratings.Insert(str("Star_Wars"), i64(5)))
	require.NoError(t, ratings.Insert(str("Jaws"), i64(4)))

	j, err := movies.NaturalJoin(ratings)
	require.NoError(t, err)
	require.Equal(t, []string{"title", "year", "length", "stars"}, j.Schema().FieldNames,
		"the duplicate common column is dropped")
	require.Equal(t, 1, j.Len())

	stars, err := j.Tuples()[0].GetField(3)
	require.NoError(t, err)
	require.Equal(t, "5", stars.String())
}

func TestNaturalJoinNoCommonAttributesIsCartesian(t *testing.T) {
	movies := movieRelation(t, index.KindNone)
	studios := studioRelation(t, index.KindNone)

	j, err := movies.NaturalJoin(studios)
	require.NoError(t, err)
	require.Equal(t, movies.Len()*studios.Len(), j.Len())
	require.Equal(t,
		[]string{"title", "year", "length", "name", "address", "presidentName"},
		j.Schema().FieldNames)
}

func TestNaturalJoinMultipleCommonAttributes(t *testing.T) {
	a, err := Parse("a", "city year pop", "String Integer Integer", "city", index.KindNone)
	require.NoError(t, err)
	require.NoError(t, a.Insert(str("Austin"), i64(2000), i64(656)))
	require.NoError(t, a.Insert(str("Austin"), i64(2010), i64(790)))

	b, err := Parse("b", "city year area", "String Integer Integer", "city", index.KindNone)
	require.NoError(t, err)
	require.NoError(t, b.Insert(str("Austin"), i64(2010), i64(272)))

	j, err := a.NaturalJoin(b)
	require.NoError(t, err)
	require.Equal(t, []string{"city", "year", "pop", "area"}, j.Schema().FieldNames)
	require.Equal(t, 1, j.Len(), "rows must agree on every common attribute")
}

package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recsysml/internal/store"
)

func TestRecommendScenario(t *testing.T) {
	snap := store.Sample()

	recs, err := Recommend(snap, "Eve", 3)
	require.NoError(t, err)

	// Los únicos candidatos son C, D y E. Charlie no aporta al promedio
	// ponderado porque su similitud con Eve es 0.
	require.Equal(t, []string{"Item E", "Item D", "Item C"}, recs)
}

func TestRecommendScoredValues(t *testing.T) {
	snap := store.Sample()

	simAlice := 1 / (1 + math.Sqrt(5))
	simBob := 1 / (1 + math.Sqrt(17))
	simDavid := 1.0 / 3.0

	scored, err := RecommendScored(snap, "Eve", 10)
	require.NoError(t, err)
	require.Len(t, scored, 3)

	want := map[string]float64{
		"Item C": (4*simAlice + 2*simBob + 4*simDavid) / (simAlice + simBob + simDavid),
		"Item D": (4*simAlice + 3*simBob) / (simAlice + simBob),
		"Item E": (4*simBob + 5*simDavid) / (simBob + simDavid),
	}
	for _, it := range scored {
		expected, ok := want[it.ItemID]
		require.True(t, ok, "item inesperado %q", it.ItemID)
		assert.InDelta(t, expected, it.Score, 1e-9)
	}
}

func TestRecommendExcludesRatedItems(t *testing.T) {
	snap := store.Sample()

	for _, user := range snap.Users() {
		ratings, ok := snap.UserRatings(user)
		require.True(t, ok)

		recs, err := Recommend(snap, user, 50)
		require.NoError(t, err)
		for _, item := range recs {
			_, rated := ratings[item]
			assert.False(t, rated, "user=%s ya valoró %s", user, item)
		}
	}
}

func TestRecommendCountLimits(t *testing.T) {
	snap := store.Sample()

	recs, err := Recommend(snap, "Eve", 0)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// negativo se trata como 0
	recs, err = Recommend(snap, "Eve", -5)
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = Recommend(snap, "Eve", 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	// pedir de más devuelve solo los candidatos disponibles
	recs, err = Recommend(snap, "Eve", 100)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestRecommendUnknownUser(t *testing.T) {
	snap := store.Sample()

	recs, err := Recommend(snap, "Frank", 3)
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, recs)
}

func TestRecommendNoSimilarUsers(t *testing.T) {
	// Zoe no comparte ningún item con el resto: ranking vacío,
	// recomendaciones vacías, sin error.
	data := store.SampleData()
	data["Zoe"] = map[string]float64{"Item Z": 5}
	snap := store.FromMap(data)

	ranked, err := RankSimilarUsers(snap, "Zoe")
	require.NoError(t, err)
	assert.Empty(t, ranked)

	recs, err := Recommend(snap, "Zoe", 3)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendScoredTieBreak(t *testing.T) {
	// Un solo vecino con dos items sin valorar al mismo rating:
	// mismo score predicho, orden por itemId ascendente.
	snap := store.FromMap(map[string]map[string]float64{
		"Ana": {"Item A": 5},
		"Bea": {"Item A": 4, "Item C": 3, "Item B": 3},
	})

	scored, err := RecommendScored(snap, "Ana", 10)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, "Item B", scored[0].ItemID)
	assert.Equal(t, "Item C", scored[1].ItemID)
	assert.Equal(t, scored[0].Score, scored[1].Score)
}

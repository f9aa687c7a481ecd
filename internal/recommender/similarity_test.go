package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recsysml/internal/store"
)

func TestSimilarityEmptyOrDisjoint(t *testing.T) {
	a := map[string]float64{"Item A": 4, "Item B": 5}
	empty := map[string]float64{}
	disjoint := map[string]float64{"Item X": 1, "Item Y": 2}

	assert.Equal(t, 0.0, Similarity(a, empty))
	assert.Equal(t, 0.0, Similarity(empty, a))
	assert.Equal(t, 0.0, Similarity(nil, a))
	assert.Equal(t, 0.0, Similarity(a, nil))
	assert.Equal(t, 0.0, Similarity(empty, empty))
	assert.Equal(t, 0.0, Similarity(a, disjoint))
}

func TestSimilaritySelf(t *testing.T) {
	a := map[string]float64{"Item A": 5, "Item B": 3, "Item C": 4}
	assert.Equal(t, 1.0, Similarity(a, a))
}

func TestSimilaritySymmetry(t *testing.T) {
	a := map[string]float64{"Item A": 5, "Item B": 3, "Item C": 4, "Item D": 4}
	b := map[string]float64{"Item A": 3, "Item B": 1, "Item C": 2, "Item E": 4}
	c := map[string]float64{"Item B": 4}

	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-12)
	assert.InDelta(t, Similarity(a, c), Similarity(c, a), 1e-12)
	assert.InDelta(t, Similarity(b, c), Similarity(c, b), 1e-12)
}

func TestSimilarityScenarioValues(t *testing.T) {
	data := store.SampleData()
	eve := data["Eve"]

	// Eve vs Alice: d = sqrt((4-5)^2 + (5-3)^2) = sqrt(5)
	assert.InDelta(t, 1/(1+math.Sqrt(5)), Similarity(eve, data["Alice"]), 1e-9)
	assert.InDelta(t, 0.3090, Similarity(eve, data["Alice"]), 1e-4)

	// Eve vs Bob: d = sqrt((4-3)^2 + (5-1)^2) = sqrt(17)
	assert.InDelta(t, 1/(1+math.Sqrt(17)), Similarity(eve, data["Bob"]), 1e-9)

	// Eve vs David: d = sqrt(0 + (5-3)^2) = 2
	assert.InDelta(t, 1.0/3.0, Similarity(eve, data["David"]), 1e-9)

	// Eve y Charlie no comparten items
	assert.Equal(t, 0.0, Similarity(eve, data["Charlie"]))
}

func TestRankSimilarUsers(t *testing.T) {
	snap := store.Sample()

	ranked, err := RankSimilarUsers(snap, "Eve")
	require.NoError(t, err)

	// David (1/3) > Alice (1/(1+sqrt5)) > Bob (1/(1+sqrt17));
	// Charlie queda afuera (cero items en común con Eve).
	require.Len(t, ranked, 3)
	assert.Equal(t, "David", ranked[0].UserID)
	assert.Equal(t, "Alice", ranked[1].UserID)
	assert.Equal(t, "Bob", ranked[2].UserID)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	for _, su := range ranked {
		assert.NotEqual(t, "Eve", su.UserID)
		assert.Greater(t, su.Score, 0.0)
		assert.LessOrEqual(t, su.Score, 1.0)
	}
}

func TestRankSimilarUsersUnknownUser(t *testing.T) {
	snap := store.Sample()

	ranked, err := RankSimilarUsers(snap, "Frank")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, ranked)
}

func TestRankSimilarUsersTieBreak(t *testing.T) {
	// Bea y Cam tienen exactamente los mismos ratings -> misma similitud
	// con Ana; el empate se resuelve por userId ascendente.
	snap := store.FromMap(map[string]map[string]float64{
		"Ana": {"Item A": 5},
		"Cam": {"Item A": 4},
		"Bea": {"Item A": 4},
	})

	ranked, err := RankSimilarUsers(snap, "Ana")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Bea", ranked[0].UserID)
	assert.Equal(t, "Cam", ranked[1].UserID)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

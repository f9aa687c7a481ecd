package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recsysml/internal/models"
)

func TestSample(t *testing.T) {
	snap := Sample()

	assert.Equal(t, []string{"Alice", "Bob", "Charlie", "David", "Eve"}, snap.Users())

	eve, ok := snap.UserRatings("Eve")
	require.True(t, ok)
	assert.Equal(t, map[string]float64{"Item A": 4.0, "Item B": 5.0}, eve)

	_, ok = snap.UserRatings("Frank")
	assert.False(t, ok)
}

func TestFromRatingsLastWins(t *testing.T) {
	snap := FromRatings([]models.RatingDoc{
		{UserID: "Ana", ItemID: "Item A", Rating: 2},
		{UserID: "Ana", ItemID: "Item A", Rating: 4},
		{UserID: "Bea", ItemID: "Item B", Rating: 5},
	})

	ana, ok := snap.UserRatings("Ana")
	require.True(t, ok)
	assert.Equal(t, 4.0, ana["Item A"])

	assert.Equal(t, []string{"Ana", "Bea"}, snap.Users())
}

func TestAdd(t *testing.T) {
	s := New()
	assert.Empty(t, s.Users())

	s.Add("Ana", "Item A", 3)
	s.Add("Ana", "Item B", 5)

	ratings, ok := s.UserRatings("Ana")
	require.True(t, ok)
	assert.Len(t, ratings, 2)
}

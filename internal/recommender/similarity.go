package recommender

import (
	"fmt"
	"math"
	"sort"
)

// SimilarUser es una entrada del ranking de vecinos de un usuario.
type SimilarUser struct {
	UserID string  `json:"userId"`
	Score  float64 `json:"score"`
}

// Similarity calcula la similitud euclidiana entre dos vectores de ratings:
// sim = 1 / (1 + sqrt(sum((ra-rb)^2))) sobre los items en común.
// Ratings idénticos dan 1.0. Si alguno de los mapas está vacío, o no hay
// items en común, devuelve exactamente 0.0 (único caso que produce 0).
func Similarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	common := 0
	for item, ra := range a {
		if rb, ok := b[item]; ok {
			d := ra - rb
			sumSquares += d * d
			common++
		}
	}
	if common == 0 {
		return 0.0
	}

	return 1.0 / (1.0 + math.Sqrt(sumSquares))
}

// RankSimilarUsers compara al usuario objetivo contra todos los demás usuarios
// del snapshot y devuelve los que tienen similitud > 0, ordenados de mayor a
// menor. Empates se resuelven por userId ascendente para que el orden sea
// determinista. El usuario objetivo nunca aparece en su propio ranking.
//
// Si el usuario no existe devuelve ErrUserNotFound con resultado vacío, para
// que "usuario desconocido" no se confunda con "sin vecinos".
func RankSimilarUsers(store RatingsStore, targetUser string) ([]SimilarUser, error) {
	targetRatings, ok := store.UserRatings(targetUser)
	if !ok {
		return []SimilarUser{}, fmt.Errorf("%w: %q", ErrUserNotFound, targetUser)
	}

	var ranked []SimilarUser
	for _, otherUser := range store.Users() {
		if otherUser == targetUser {
			continue
		}
		otherRatings, ok := store.UserRatings(otherUser)
		if !ok {
			continue
		}
		if sim := Similarity(targetRatings, otherRatings); sim > 0 {
			ranked = append(ranked, SimilarUser{UserID: otherUser, Score: sim})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	return ranked, nil
}

package recommender

import (
	"fmt"
	"sort"
)

// ScoredItem es un item recomendado junto a su rating predicho.
// El score es interno (historial, cache); el contrato hacia afuera son
// solo los ids, ver Recommend.
type ScoredItem struct {
	ItemID string  `json:"itemId"`
	Score  float64 `json:"score"`
}

// RecommendScored genera recomendaciones para targetUser a partir de sus
// vecinos: para cada item que el usuario NO valoró se acumula
// sum(rating*sim) y sum(sim) sobre los vecinos con similitud positiva,
// y el rating predicho es el cociente. Devuelve a lo sumo maxCount items
// ordenados por score descendente (empates por itemId ascendente).
//
// maxCount negativo se trata como 0 (resultado vacío, sin error).
// Sin vecinos con similitud positiva el resultado es vacío y nil error:
// no es una condición fatal. Usuario desconocido -> ErrUserNotFound.
func RecommendScored(store RatingsStore, targetUser string, maxCount int) ([]ScoredItem, error) {
	if maxCount < 0 {
		maxCount = 0
	}

	targetRatings, ok := store.UserRatings(targetUser)
	if !ok {
		return []ScoredItem{}, fmt.Errorf("%w: %q", ErrUserNotFound, targetUser)
	}

	ranked, err := RankSimilarUsers(store, targetUser)
	if err != nil {
		return []ScoredItem{}, err
	}
	if len(ranked) == 0 || maxCount == 0 {
		return []ScoredItem{}, nil
	}

	weightedSum := make(map[string]float64)
	simTotal := make(map[string]float64)

	for _, neighbor := range ranked {
		neighborRatings, ok := store.UserRatings(neighbor.UserID)
		if !ok {
			continue
		}
		for item, rating := range neighborRatings {
			if _, rated := targetRatings[item]; rated {
				continue
			}
			weightedSum[item] += rating * neighbor.Score
			simTotal[item] += neighbor.Score
		}
	}

	items := make([]ScoredItem, 0, len(weightedSum))
	for item, num := range weightedSum {
		den := simTotal[item]
		if den <= 0 {
			// invariante: den siempre es > 0 porque solo entran sims > 0
			continue
		}
		items = append(items, ScoredItem{ItemID: item, Score: num / den})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ItemID < items[j].ItemID
	})

	if len(items) > maxCount {
		items = items[:maxCount]
	}
	return items, nil
}

// Recommend es la variante del contrato público: solo los ids de los items,
// en el mismo orden que RecommendScored.
func Recommend(store RatingsStore, targetUser string, maxCount int) ([]string, error) {
	scored, err := RecommendScored(store, targetUser, maxCount)
	if err != nil {
		return []string{}, err
	}
	ids := make([]string, 0, len(scored))
	for _, it := range scored {
		ids = append(ids, it.ItemID)
	}
	return ids, nil
}

package store

import (
	"sort"

	"recsysml/internal/models"
)

// MemoryStore es un snapshot en memoria de user -> (item -> rating).
// Implementa recommender.RatingsStore. Quien lo arma es el dueño de los
// datos; los motores solo leen.
type MemoryStore struct {
	data map[string]map[string]float64
}

func New() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]float64)}
}

// FromMap arma el snapshot directamente desde un mapa ya construido.
func FromMap(data map[string]map[string]float64) *MemoryStore {
	s := New()
	for userID, ratings := range data {
		for itemID, rating := range ratings {
			s.Add(userID, itemID, rating)
		}
	}
	return s
}

// FromRatings arma el snapshot desde los documentos de la colección ratings.
// Si un (user, item) aparece repetido gana el último.
func FromRatings(docs []models.RatingDoc) *MemoryStore {
	s := New()
	for _, d := range docs {
		s.Add(d.UserID, d.ItemID, d.Rating)
	}
	return s
}

func (s *MemoryStore) Add(userID, itemID string, rating float64) {
	ratings, ok := s.data[userID]
	if !ok {
		ratings = make(map[string]float64)
		s.data[userID] = ratings
	}
	ratings[itemID] = rating
}

// Users devuelve los ids ordenados alfabéticamente, para que las
// iteraciones sobre el snapshot sean deterministas.
func (s *MemoryStore) Users() []string {
	users := make([]string, 0, len(s.data))
	for userID := range s.data {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users
}

// UserRatings devuelve el mapa interno; es vista de solo lectura.
func (s *MemoryStore) UserRatings(userID string) (map[string]float64, bool) {
	ratings, ok := s.data[userID]
	return ratings, ok
}

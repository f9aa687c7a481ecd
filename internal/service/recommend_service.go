package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"recsysml/internal/cache"
	"recsysml/internal/models"
	"recsysml/internal/recommender"
	"recsysml/internal/repository"
	"recsysml/internal/store"
)

const (
	DefaultK = 10
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems
)

type RecommendService struct {
	ratings *repository.RatingRepository
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	r *repository.RatingRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		ratings: r,
		recRepo: recRepo,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID  string
	K       int
	Refresh bool
}

func cacheKey(req RecRequest) string {
	// Cachea por usuario + k (no incluye refresh, refresh solo decide si usar cache)
	return fmt.Sprintf("rec:user:%s:k:%d", req.UserID, req.K)
}

func simCacheKey(userID string) string {
	return fmt.Sprintf("sim:user:%s", userID)
}

// snapshot carga todos los ratings de Mongo en un MemoryStore.
// Los motores trabajan siempre sobre esta vista estable, nunca contra Mongo.
func (s *RecommendService) snapshot(ctx context.Context) (*store.MemoryStore, error) {
	docs, err := s.ratings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return store.FromRatings(docs), nil
}

// Recommend corre el motor user-based sobre el snapshot y devuelve los items
// con su rating predicho. K fuera de rango se normaliza acá (capa HTTP);
// el motor mantiene su semántica exacta.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Snapshot de ratings
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Motor
	scored, err := recommender.RecommendScored(snap, req.UserID, req.K)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		log.Printf("[recommend] sin vecinos con similitud > 0 para user=%s", req.UserID)
		return []models.RecItem{}, nil
	}

	items := make([]models.RecItem, 0, len(scored))
	for _, it := range scored {
		items = append(items, models.RecItem{ItemID: it.ItemID, Score: it.Score})
	}

	// 4) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID:           req.UserID,
			Algo:             "user-knn",
			SimilarityMetric: "euclidean",
			Params: map[string]any{
				"k":       req.K,
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}

		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 5) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// SimilarUsers devuelve el ranking de vecinos del usuario (score descendente).
func (s *RecommendService) SimilarUsers(ctx context.Context, userID string, refresh bool) ([]recommender.SimilarUser, error) {
	var cached []recommender.SimilarUser
	if !refresh {
		if ok, err := cache.GetJSON(ctx, simCacheKey(userID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := recommender.RankSimilarUsers(snap, userID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, simCacheKey(userID), ranked, 60*60); err != nil {
		log.Printf("error cacheando similitudes en Redis: %v", err)
	}

	return ranked, nil
}

// Users lista los usuarios conocidos por el snapshot de ratings.
func (s *RecommendService) Users(ctx context.Context) ([]string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Users(), nil
}

// History lista el historial de recomendaciones servidas a un usuario.
func (s *RecommendService) History(ctx context.Context, userID string, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}

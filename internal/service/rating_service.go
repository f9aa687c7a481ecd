package service

import (
	"context"
	"fmt"

	"recsysml/internal/models"
	"recsysml/internal/repository"
)

type RatingService struct {
	ratings *repository.RatingRepository
}

func NewRatingService(r *repository.RatingRepository) *RatingService {
	return &RatingService{ratings: r}
}

func (s *RatingService) AddOrUpdate(ctx context.Context, userID, itemID string, rating float64) error {
	if userID == "" || itemID == "" {
		return fmt.Errorf("userId e itemId son obligatorios")
	}
	return s.ratings.UpsertRating(ctx, userID, itemID, rating)
}

func (s *RatingService) GetByUser(ctx context.Context, userID string, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}

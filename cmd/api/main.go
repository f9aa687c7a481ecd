package main

import (
	"context"
	"log"
	"net/http"

	_ "recsysml/docs" // swagger docs

	"recsysml/internal/cache"
	"recsysml/internal/config"
	"recsysml/internal/db"
	"recsysml/internal/handler"
	"recsysml/internal/repository"
	"recsysml/internal/service"
	"recsysml/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title RecSysML API
// @version 1.0
// @description API de recomendaciones user-based (similitud euclidiana, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	ratingRepo := repository.NewRatingRepository()
	recRepo := repository.NewRecommendationRepository()

	// seeding opcional del dataset de demo
	if cfg.SeedSample {
		seedSampleData(ratingRepo)
	}

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	ratingSvc := service.NewRatingService(ratingRepo)
	recSvc := service.NewRecommendService(ratingRepo, recRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	recH := handler.NewRecommendHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/users", recH.GetUsers)

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/ratings", ratingH.GetRatings)
			r.Post("/ratings", ratingH.PostRating)

			r.Get("/similar", recH.GetSimilarUsers)

			// HTTP normal
			r.Get("/recommendations", recH.GetRecommendations)
			r.Get("/recommendations/history", recH.GetHistory)

			// WebSocket
			r.Get("/ws/recommendations", recH.GetRecommendationsWS)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

// seedSampleData sube el dataset de demo a Mongo (upsert, idempotente).
func seedSampleData(ratings *repository.RatingRepository) {
	ctx := context.Background()
	total := 0
	for userID, userRatings := range store.SampleData() {
		for itemID, rating := range userRatings {
			if err := ratings.UpsertRating(ctx, userID, itemID, rating); err != nil {
				log.Printf("[seed] error con %s/%s: %v", userID, itemID, err)
				continue
			}
			total++
		}
	}
	log.Printf("[seed] dataset de demo cargado (%d ratings)", total)
}

package models

import "time"

type RecItem struct {
	ItemID string  `bson:"itemId" json:"itemId"`
	Score  float64 `bson:"score"  json:"score"`
}

// Recommendation es el historial que guardamos en Mongo cada vez que se
// sirve una recomendación.
type Recommendation struct {
	ID               string    `bson:"_id,omitempty"    json:"id"`
	UserID           string    `bson:"userId"           json:"userId"`
	Algo             string    `bson:"algo"             json:"algo"`
	SimilarityMetric string    `bson:"similarityMetric" json:"similarityMetric"`
	Params           any       `bson:"params"           json:"params"`
	Items            []RecItem `bson:"items"            json:"items"`
	CreatedAt        time.Time `bson:"createdAt"        json:"createdAt"`
}

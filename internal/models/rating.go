package models

// Lo que está en Mongo (colección ratings)
type RatingDoc struct {
	UserID    string  `json:"userId" bson:"userId"`
	ItemID    string  `json:"itemId" bson:"itemId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}

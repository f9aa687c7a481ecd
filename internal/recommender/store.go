package recommender

// RatingsStore es la vista de solo lectura sobre los ratings que usan los
// motores. Debe ser un snapshot estable durante toda la consulta: los motores
// no toman locks ni copian nada.
type RatingsStore interface {
	// Users devuelve los ids de todos los usuarios conocidos.
	Users() []string
	// UserRatings devuelve el mapa item -> rating del usuario.
	// ok = false si el usuario no existe en el snapshot.
	UserRatings(userID string) (map[string]float64, bool)
}

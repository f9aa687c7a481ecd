package store

// SampleData es el dataset de demo: cinco usuarios con ratings 1.0–5.0.
// Eve no valoró C, D ni E, que es justo para lo que pide recomendaciones.
// Lo usan el CLI, el seeding opcional de Mongo y los tests.
func SampleData() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"Alice": {
			"Item A": 5.0,
			"Item B": 3.0,
			"Item C": 4.0,
			"Item D": 4.0,
		},
		"Bob": {
			"Item A": 3.0,
			"Item B": 1.0,
			"Item C": 2.0,
			"Item D": 3.0,
			"Item E": 4.0,
		},
		"Charlie": {
			"Item B": 4.0,
			"Item C": 5.0,
			"Item D": 5.0,
			"Item E": 3.0,
		},
		"David": {
			"Item A": 4.0,
			"Item B": 3.0,
			"Item C": 4.0,
			"Item E": 5.0,
		},
		"Eve": {
			"Item A": 4.0,
			"Item B": 5.0,
		},
	}
}

// Sample devuelve el dataset de demo ya cargado en un MemoryStore.
func Sample() *MemoryStore {
	return FromMap(SampleData())
}

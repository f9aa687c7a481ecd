package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"recsysml/internal/recommender"
	"recsysml/internal/store"
)

// Demo interactiva sobre el dataset de ejemplo, sin Mongo ni Redis:
// puro shell encima de RankSimilarUsers y Recommend.
func main() {
	snap := store.Sample()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("RecSysML — demo interactiva")
	fmt.Printf("Usuarios disponibles: %s\n", strings.Join(snap.Users(), ", "))

	for {
		fmt.Print("\nUsuario para recomendar (o 'exit' para salir): ")
		if !in.Scan() {
			break
		}
		userName := strings.TrimSpace(in.Text())
		if strings.EqualFold(userName, "exit") {
			break
		}
		if userName == "" {
			continue
		}

		fmt.Print("¿Cuántas recomendaciones? ")
		if !in.Scan() {
			break
		}
		numRecs, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("Número inválido, probá de nuevo.")
			continue
		}

		fmt.Printf("\n--- Usuarios similares a %s ---\n", userName)
		similar, err := recommender.RankSimilarUsers(snap, userName)
		if errors.Is(err, recommender.ErrUserNotFound) {
			fmt.Printf("Usuario %q no existe en el sistema.\n", userName)
			continue
		}
		if len(similar) == 0 {
			fmt.Println("No se encontraron usuarios similares.")
		} else {
			for _, su := range similar {
				fmt.Printf("- %s (similitud: %.4f)\n", su.UserID, su.Score)
			}
		}

		fmt.Printf("\n--- Top %d recomendaciones para %s ---\n", numRecs, userName)
		recs, err := recommender.Recommend(snap, userName, numRecs)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if len(recs) == 0 {
			fmt.Printf("No se pudieron generar recomendaciones para %s.\n", userName)
			continue
		}
		for i, item := range recs {
			fmt.Printf("%d. %s\n", i+1, item)
		}
	}

	fmt.Println("Chau!")
}

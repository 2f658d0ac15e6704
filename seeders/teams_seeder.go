package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var teamNames = []string{"Mechanics", "IT Support"}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение бригад...")

	for _, name := range teamNames {
		var exists bool
		err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM teams WHERE name = $1)", name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("ошибка при проверке бригады '%s': %w", name, err)
		}
		if exists {
			log.Printf("    - Бригада '%s' уже существует. Пропускаем.", name)
			continue
		}

		if _, err := db.Exec(ctx, "INSERT INTO teams (name) VALUES ($1)", name); err != nil {
			return fmt.Errorf("ошибка при создании бригады '%s': %w", name, err)
		}
		log.Printf("    - Бригада '%s' создана.", name)
	}

	return nil
}

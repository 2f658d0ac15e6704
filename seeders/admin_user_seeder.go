package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание пользователя 'admin'...")

	username := "admin"
	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	if err == nil {
		log.Println("    - Пользователь admin уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	query := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`
	if err := db.QueryRow(ctx, query, username, hashedPassword, "Manager").Scan(&userID); err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	log.Println("    - Пользователь admin успешно создан.")
	return nil
}

package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData наполняет базу стартовыми данными: администратор,
// бригады и оборудование. Все сидеры идемпотентны.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения стартовых данных...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Бригад (Teams): %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipments): %v", err)
	}

	log.Println("✅ Наполнение стартовых данных завершено!")
}

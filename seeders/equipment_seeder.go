package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type equipmentFixture struct {
	name         string
	serialNumber string
	teamName     string
}

var equipmentFixtures = []equipmentFixture{
	{name: "CNC Machine 01", serialNumber: "CNC-99", teamName: "Mechanics"},
	{name: "Server Rack A", serialNumber: "SRV-01", teamName: "IT Support"},
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение оборудования...")

	for _, fixture := range equipmentFixtures {
		var exists bool
		err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM equipments WHERE serial_number = $1)", fixture.serialNumber).Scan(&exists)
		if err != nil {
			return fmt.Errorf("ошибка при проверке оборудования '%s': %w", fixture.name, err)
		}
		if exists {
			log.Printf("    - Оборудование '%s' уже существует. Пропускаем.", fixture.name)
			continue
		}

		var teamID *uint64
		var id uint64
		err = db.QueryRow(ctx, "SELECT id FROM teams WHERE name = $1", fixture.teamName).Scan(&id)
		switch {
		case err == nil:
			teamID = &id
		case errors.Is(err, pgx.ErrNoRows):
			log.Printf("    - Бригада '%s' не найдена, оборудование будет без бригады.", fixture.teamName)
		default:
			return fmt.Errorf("ошибка при поиске бригады '%s': %w", fixture.teamName, err)
		}

		query := `INSERT INTO equipments (name, serial_number, team_id, status) VALUES ($1, $2, $3, 'ACTIVE')`
		if _, err := db.Exec(ctx, query, fixture.name, fixture.serialNumber, teamID); err != nil {
			return fmt.Errorf("ошибка при создании оборудования '%s': %w", fixture.name, err)
		}
		log.Printf("    - Оборудование '%s' (%s) создано.", fixture.name, fixture.serialNumber)
	}

	return nil
}

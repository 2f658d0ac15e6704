package entities

import (
	"gearguard/pkg/types"
)

type Equipment struct {
	ID           uint64  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	SerialNumber *string `json:"serial_number" db:"serial_number"`
	TeamID       *uint64 `json:"team_id" db:"team_id"`
	Status       string  `json:"status" db:"status"`

	types.BaseEntity

	// Связанные данные (не колонки в таблице)
	Team *Team `json:"team,omitempty" db:"-"`
}

package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required,min=2,max=100"`
	SerialNumber string      `json:"serial_number" validate:"omitempty,max=100"`
	TeamID       null.Uint64 `json:"team_id"`
}

type EquipmentDTO struct {
	ID           uint64        `json:"id"`
	Name         string        `json:"name"`
	SerialNumber *string       `json:"serial_number,omitempty"`
	Status       string        `json:"status"`
	Team         *ShortNameDTO `json:"team,omitempty"`
	CreatedAt    string        `json:"created_at"`
}

package entities

import (
	"time"
)

type MaintenanceRequest struct {
	ID           uint64     `json:"id" db:"id"`
	Subject      string     `json:"subject" db:"subject"`
	RequestType  *string    `json:"request_type" db:"request_type"`
	Status       string     `json:"status" db:"status"`
	EquipmentID  uint64     `json:"equipment_id" db:"equipment_id"`
	ScheduledAt  *time.Time `json:"scheduled_date" db:"scheduled_date"`
	TechnicianID *uint64    `json:"technician_id" db:"technician_id"`
	CreatedAt    *time.Time `json:"created_at" db:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at" db:"resolved_at"`

	// Связанные данные (не колонки в таблице)
	Equipment  *Equipment `json:"equipment,omitempty" db:"-"`
	Technician *User      `json:"technician,omitempty" db:"-"`
}

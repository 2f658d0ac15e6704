package dto

import "github.com/aarondl/null/v8"

type CreateRequestDTO struct {
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	RequestType string `json:"request_type" validate:"omitempty,max=50"`
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
	// Формат "2006-01-02"; нечитаемая дата молча отбрасывается.
	ScheduledDate null.String `json:"scheduled_date"`
	TechnicianID  null.Uint64 `json:"technician_id"`
}

type AssignRequestDTO struct {
	TechnicianID uint64 `json:"technician_id" validate:"required,gt=0"`
}

type RequestResponseDTO struct {
	ID            uint64        `json:"id"`
	Subject       string        `json:"subject"`
	RequestType   *string       `json:"request_type,omitempty"`
	Status        string        `json:"status"`
	StatusName    string        `json:"status_name"`
	EquipmentID   uint64        `json:"equipment_id"`
	Equipment     *ShortNameDTO `json:"equipment,omitempty"`
	ScheduledDate *string       `json:"scheduled_date,omitempty"`
	Technician    *ShortUserDTO `json:"technician,omitempty"`
	CreatedAt     string        `json:"created_at"`
	ResolvedAt    *string       `json:"resolved_at,omitempty"`
}

type ShortUserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type ShortNameDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

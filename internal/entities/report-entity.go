package entities

import "time"

// ReportItem — строка отчёта по заявкам (выгрузка в JSON или XLSX).
type ReportItem struct {
	ID             uint64
	Subject        string
	RequestType    *string
	Status         string
	EquipmentName  string
	SerialNumber   *string
	TechnicianName *string
	ScheduledAt    *time.Time
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}

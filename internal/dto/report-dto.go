package dto

import "time"

type ReportFilterDTO struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Statuses []string
}

type ReportItemDTO struct {
	ID            uint64  `json:"id"`
	Subject       string  `json:"subject"`
	RequestType   string  `json:"request_type"`
	Status        string  `json:"status"`
	Equipment     string  `json:"equipment"`
	SerialNumber  string  `json:"serial_number"`
	Technician    string  `json:"technician"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	CreatedAt     string  `json:"created_at"`
	ResolvedAt    *string `json:"resolved_at,omitempty"`
}

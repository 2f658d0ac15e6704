package constants

import apperrors "gearguard/pkg/errors"

// --- СТАТУСЫ ЗАЯВОК (Совпадает с кодами в БД) ---
const (
	RequestStatusNew        = "NEW"
	RequestStatusInProgress = "IN_PROGRESS"
	RequestStatusRepaired   = "REPAIRED"
	RequestStatusScrap      = "SCRAP"
)

// --- СТАТУСЫ ОБОРУДОВАНИЯ ---
const (
	EquipmentStatusActive   = "ACTIVE"
	EquipmentStatusScrapped = "SCRAPPED"
)

// Человекочитаемые названия для отчётов и календаря.
var RequestStatusNames = map[string]string{
	RequestStatusNew:        "New",
	RequestStatusInProgress: "In Progress",
	RequestStatusRepaired:   "Repaired",
	RequestStatusScrap:      "Scrap",
}

// ParseRequestStatus проверяет код статуса по закрытому перечню.
// Произвольные строки из URL не принимаются.
func ParseRequestStatus(code string) (string, error) {
	switch code {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusRepaired, RequestStatusScrap:
		return code, nil
	default:
		return "", apperrors.ErrBadRequest
	}
}

func RequestStatusName(code string) string {
	if name, ok := RequestStatusNames[code]; ok {
		return name
	}
	return code
}

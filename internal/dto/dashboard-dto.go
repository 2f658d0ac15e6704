package dto

// DashboardDTO — четыре kanban-колонки плюс данные для форм.
type DashboardDTO struct {
	New        []RequestResponseDTO `json:"new"`
	InProgress []RequestResponseDTO `json:"in_progress"`
	Repaired   []RequestResponseDTO `json:"repaired"`
	Scrap      []RequestResponseDTO `json:"scrap"`

	Equipments []EquipmentDTO  `json:"equipments"`
	Users      []UserPublicDTO `json:"users"`

	Today string `json:"today"`
}

package dto

// CalendarEventDTO — формат события, который понимает FullCalendar на фронте.
type CalendarEventDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	AllDay    bool   `json:"allDay"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
	URL       string `json:"url"`
}

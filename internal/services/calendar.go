package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
)

// Цвета событий календаря по статусу заявки.
var calendarColors = map[string][2]string{
	constants.RequestStatusNew:        {"#FFC107", "#000000"},
	constants.RequestStatusInProgress: {"#0D6EFD", "#FFFFFF"},
	constants.RequestStatusRepaired:   {"#198754", "#FFFFFF"},
}

type CalendarServiceInterface interface {
	GetEvents(ctx context.Context) ([]dto.CalendarEventDTO, error)
}

type CalendarService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewCalendarService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) CalendarServiceInterface {
	return &CalendarService{requestRepo: requestRepo, logger: logger}
}

// mapRequestToEvent строит событие календаря из заявки. Дата события —
// scheduled_date, а если её нет, то дата создания заявки.
func mapRequestToEvent(request *entities.MaintenanceRequest) dto.CalendarEventDTO {
	start := ""
	if request.ScheduledAt != nil {
		start = request.ScheduledAt.Format(dateLayout)
	} else if request.CreatedAt != nil {
		start = request.CreatedAt.Format(dateLayout)
	}

	technician := "Unassigned"
	if request.Technician != nil {
		technician = request.Technician.Username
	}

	colors, ok := calendarColors[request.Status]
	if !ok {
		colors = calendarColors[constants.RequestStatusNew]
	}

	return dto.CalendarEventDTO{
		ID:        request.ID,
		Title:     fmt.Sprintf("%s — %s", request.Subject, technician),
		Start:     start,
		AllDay:    true,
		Color:     colors[0],
		TextColor: colors[1],
		// Клик по событию переводит заявку в работу. Это ярлык для
		// календаря, а не общий механизм смены статуса.
		URL: fmt.Sprintf("/api/requests/%d/move/%s", request.ID, constants.RequestStatusInProgress),
	}
}

// GetEvents возвращает по одному событию на каждую «живую» заявку.
// Списанные (SCRAP) в календарь не попадают.
func (s *CalendarService) GetEvents(ctx context.Context) ([]dto.CalendarEventDTO, error) {
	requests, err := s.requestRepo.GetRequestsExcludingStatus(ctx, constants.RequestStatusScrap)
	if err != nil {
		s.logger.Error("GetEvents: ошибка при получении заявок", zap.Error(err))
		return nil, err
	}

	events := make([]dto.CalendarEventDTO, 0, len(requests))
	for i := range requests {
		events = append(events, mapRequestToEvent(&requests[i]))
	}
	return events, nil
}

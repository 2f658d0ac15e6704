package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02, 15:04:05"

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestResponseDTO, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestResponseDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestResponseDTO, error)
	AssignTechnician(ctx context.Context, id uint64, payload dto.AssignRequestDTO) (*dto.RequestResponseDTO, error)
	MoveRequest(ctx context.Context, id uint64, statusCode string) (*dto.RequestResponseDTO, error)
	ArchiveRequest(ctx context.Context, id uint64) error
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func mapRequestToDTO(request *entities.MaintenanceRequest) dto.RequestResponseDTO {
	res := dto.RequestResponseDTO{
		ID:          request.ID,
		Subject:     request.Subject,
		RequestType: request.RequestType,
		Status:      request.Status,
		StatusName:  constants.RequestStatusName(request.Status),
		EquipmentID: request.EquipmentID,
	}

	if request.Equipment != nil {
		res.Equipment = &dto.ShortNameDTO{ID: request.Equipment.ID, Name: request.Equipment.Name}
	}
	if request.Technician != nil {
		res.Technician = &dto.ShortUserDTO{ID: request.Technician.ID, Username: request.Technician.Username}
	}
	if request.ScheduledAt != nil {
		scheduled := request.ScheduledAt.Format(dateLayout)
		res.ScheduledDate = &scheduled
	}
	if request.CreatedAt != nil {
		res.CreatedAt = request.CreatedAt.Format(timestampLayout)
	}
	if request.ResolvedAt != nil {
		resolved := request.ResolvedAt.Format(timestampLayout)
		res.ResolvedAt = &resolved
	}

	return res
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestResponseDTO, uint64, error) {
	requests, total, err := s.requestRepo.GetRequests(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.RequestResponseDTO, 0, len(requests))
	for i := range requests {
		list = append(list, mapRequestToDTO(&requests[i]))
	}
	return list, total, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestResponseDTO, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	res := mapRequestToDTO(request)
	return &res, nil
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestResponseDTO, error) {
	// Оборудование обязано существовать, иначе 404.
	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		s.logger.Warn("CreateRequest: оборудование не найдено", zap.Uint64("equipmentID", payload.EquipmentID))
		return nil, apperrors.NewHttpError(http.StatusNotFound, "Оборудование не найдено", err, nil)
	}

	request := entities.MaintenanceRequest{
		Subject:     payload.Subject,
		EquipmentID: payload.EquipmentID,
		// Статус при создании всегда NEW, что бы ни прислал клиент.
		Status: constants.RequestStatusNew,
	}

	if payload.RequestType != "" {
		requestType := payload.RequestType
		request.RequestType = &requestType
	}

	// Нечитаемая дата молча отбрасывается: так ведёт себя форма на фронте.
	if payload.ScheduledDate.Valid {
		if scheduled, err := time.Parse(dateLayout, payload.ScheduledDate.String); err == nil {
			request.ScheduledAt = &scheduled
		} else {
			s.logger.Debug("CreateRequest: дата не распознана и пропущена",
				zap.String("scheduled_date", payload.ScheduledDate.String))
		}
	}

	if payload.TechnicianID.Valid {
		technicianID := payload.TechnicianID.Uint64
		if _, err := s.userRepo.FindUserByID(ctx, technicianID); err != nil {
			s.logger.Warn("CreateRequest: исполнитель не найден", zap.Uint64("technicianID", technicianID))
			return nil, apperrors.NewHttpError(http.StatusNotFound, "Исполнитель не найден", err, nil)
		}
		request.TechnicianID = &technicianID
	}

	id, err := s.requestRepo.CreateRequest(ctx, &request)
	if err != nil {
		s.logger.Error("CreateRequest: ошибка при создании заявки", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Заявка успешно создана", zap.Uint64("id", id), zap.String("subject", payload.Subject))
	return s.FindRequest(ctx, id)
}

// AssignTechnician назначает исполнителя. Назначение на новую заявку означает,
// что работа началась: NEW автоматически переводится в IN_PROGRESS.
// Это единственный автоматический переход в системе.
func (s *RequestService) AssignTechnician(ctx context.Context, id uint64, payload dto.AssignRequestDTO) (*dto.RequestResponseDTO, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, payload.TechnicianID); err != nil {
		s.logger.Warn("AssignTechnician: исполнитель не найден", zap.Uint64("technicianID", payload.TechnicianID))
		return nil, apperrors.NewHttpError(http.StatusNotFound, "Исполнитель не найден", err, nil)
	}

	status := request.Status
	if status == constants.RequestStatusNew {
		status = constants.RequestStatusInProgress
	}

	if err := s.requestRepo.AssignTechnician(ctx, id, payload.TechnicianID, status); err != nil {
		s.logger.Error("AssignTechnician: ошибка при назначении исполнителя", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Исполнитель назначен",
		zap.Uint64("requestID", id),
		zap.Uint64("technicianID", payload.TechnicianID),
		zap.String("status", status))

	return s.FindRequest(ctx, id)
}

// MoveRequest — переход заявки по kanban-доске. Код статуса проверяется по
// закрытому перечню. Побочные эффекты в порядке применения:
//  1. первый переход в REPAIRED ставит resolved_at (повторный не перезаписывает);
//  2. переход в SCRAP безвозвратно списывает оборудование.
func (s *RequestService) MoveRequest(ctx context.Context, id uint64, statusCode string) (*dto.RequestResponseDTO, error) {
	status, err := constants.ParseRequestStatus(statusCode)
	if err != nil {
		s.logger.Warn("MoveRequest: неизвестный код статуса", zap.String("status", statusCode))
		return nil, apperrors.NewBadRequestError("Неизвестный статус заявки: " + statusCode)
	}

	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if status == constants.RequestStatusRepaired && request.ResolvedAt == nil {
		now := time.Now()
		resolvedAt = &now
	}

	if err := s.requestRepo.UpdateRequestStatus(ctx, id, status, resolvedAt); err != nil {
		s.logger.Error("MoveRequest: ошибка при смене статуса", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	if status == constants.RequestStatusScrap {
		if err := s.equipmentRepo.UpdateEquipmentStatus(ctx, request.EquipmentID, constants.EquipmentStatusScrapped); err != nil {
			s.logger.Error("MoveRequest: не удалось списать оборудование",
				zap.Uint64("equipmentID", request.EquipmentID), zap.Error(err))
			return nil, err
		}
		s.logger.Warn("Оборудование списано", zap.Uint64("equipmentID", request.EquipmentID))
	}

	s.logger.Info("Статус заявки изменён",
		zap.Uint64("requestID", id),
		zap.String("from", request.Status),
		zap.String("to", status))

	return s.FindRequest(ctx, id)
}

// ArchiveRequest удаляет заявку безвозвратно: ни мягкого удаления, ни журнала.
func (s *RequestService) ArchiveRequest(ctx context.Context, id uint64) error {
	if err := s.requestRepo.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Заявка отправлена в архив и удалена", zap.Uint64("requestID", id))
	return nil
}

package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *DashboardService) requestsColumn(ctx context.Context, status string) ([]dto.RequestResponseDTO, error) {
	requests, err := s.requestRepo.GetRequestsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	column := make([]dto.RequestResponseDTO, 0, len(requests))
	for i := range requests {
		column = append(column, mapRequestToDTO(&requests[i]))
	}
	return column, nil
}

// GetDashboard собирает kanban-доску: четыре непересекающиеся колонки по
// статусам, активное оборудование и пользователи для формы создания заявки.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	board := &dto.DashboardDTO{
		Today: time.Now().Format(dateLayout),
	}

	var err error
	if board.New, err = s.requestsColumn(ctx, constants.RequestStatusNew); err != nil {
		return nil, err
	}
	if board.InProgress, err = s.requestsColumn(ctx, constants.RequestStatusInProgress); err != nil {
		return nil, err
	}
	if board.Repaired, err = s.requestsColumn(ctx, constants.RequestStatusRepaired); err != nil {
		return nil, err
	}
	if board.Scrap, err = s.requestsColumn(ctx, constants.RequestStatusScrap); err != nil {
		return nil, err
	}

	equipments, err := s.equipmentRepo.GetEquipmentsByStatus(ctx, constants.EquipmentStatusActive)
	if err != nil {
		s.logger.Error("GetDashboard: ошибка при получении оборудования", zap.Error(err))
		return nil, err
	}
	board.Equipments = make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		board.Equipments = append(board.Equipments, mapEquipmentToDTO(&equipments[i]))
	}

	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		s.logger.Error("GetDashboard: ошибка при получении пользователей", zap.Error(err))
		return nil, err
	}
	board.Users = make([]dto.UserPublicDTO, 0, len(users))
	for _, user := range users {
		board.Users = append(board.Users, dto.UserPublicDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
	}

	return board, nil
}

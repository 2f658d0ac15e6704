package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	GetEquipmentRequests(ctx context.Context, id uint64) ([]dto.RequestResponseDTO, error)
	GetTeams(ctx context.Context) ([]entities.Team, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func mapEquipmentToDTO(equipment *entities.Equipment) dto.EquipmentDTO {
	res := dto.EquipmentDTO{
		ID:           equipment.ID,
		Name:         equipment.Name,
		SerialNumber: equipment.SerialNumber,
		Status:       equipment.Status,
	}
	if equipment.Team != nil {
		res.Team = &dto.ShortNameDTO{ID: equipment.Team.ID, Name: equipment.Team.Name}
	}
	if equipment.CreatedAt != nil {
		res.CreatedAt = equipment.CreatedAt.Format(timestampLayout)
	}
	return res
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	equipments, total, err := s.equipmentRepo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		list = append(list, mapEquipmentToDTO(&equipments[i]))
	}
	return list, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	res := mapEquipmentToDTO(equipment)
	return &res, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment := entities.Equipment{
		Name:   payload.Name,
		Status: constants.EquipmentStatusActive,
	}

	if payload.SerialNumber != "" {
		serial := payload.SerialNumber
		equipment.SerialNumber = &serial
	}

	if payload.TeamID.Valid {
		teamID := payload.TeamID.Uint64
		if _, err := s.teamRepo.FindTeam(ctx, teamID); err != nil {
			s.logger.Warn("CreateEquipment: бригада не найдена", zap.Uint64("teamID", teamID))
			return nil, err
		}
		equipment.TeamID = &teamID
	}

	id, err := s.equipmentRepo.CreateEquipment(ctx, &equipment)
	if err != nil {
		s.logger.Error("CreateEquipment: ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Оборудование успешно создано", zap.Uint64("id", id), zap.String("name", payload.Name))
	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) GetTeams(ctx context.Context) ([]entities.Team, error) {
	return s.teamRepo.GetTeams(ctx)
}

// GetEquipmentRequests — история обслуживания одной единицы оборудования.
func (s *EquipmentService) GetEquipmentRequests(ctx context.Context, id uint64) ([]dto.RequestResponseDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.GetRequestsByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	history := make([]dto.RequestResponseDTO, 0, len(requests))
	for i := range requests {
		history = append(history, mapRequestToDTO(&requests[i]))
	}
	return history, nil
}

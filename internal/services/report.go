package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
)

type ReportServiceInterface interface {
	GetReportItems(ctx context.Context, filter dto.ReportFilterDTO) ([]entities.ReportItem, uint64, error)
	GetReportDTOs(ctx context.Context, filter dto.ReportFilterDTO) ([]dto.ReportItemDTO, uint64, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) GetReportItems(ctx context.Context, filter dto.ReportFilterDTO) ([]entities.ReportItem, uint64, error) {
	return s.reportRepo.GetReport(ctx, filter)
}

func (s *reportService) GetReportDTOs(ctx context.Context, filter dto.ReportFilterDTO) ([]dto.ReportItemDTO, uint64, error) {
	items, total, err := s.reportRepo.GetReport(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.ReportItemDTO, 0, len(items))
	for _, item := range items {
		row := dto.ReportItemDTO{
			ID:        item.ID,
			Subject:   item.Subject,
			Status:    constants.RequestStatusName(item.Status),
			Equipment: item.EquipmentName,
			CreatedAt: item.CreatedAt.Format(timestampLayout),
		}
		if item.RequestType != nil {
			row.RequestType = *item.RequestType
		}
		if item.SerialNumber != nil {
			row.SerialNumber = *item.SerialNumber
		}
		if item.TechnicianName != nil {
			row.Technician = *item.TechnicianName
		}
		if item.ScheduledAt != nil {
			scheduled := item.ScheduledAt.Format(dateLayout)
			row.ScheduledDate = &scheduled
		}
		if item.ResolvedAt != nil {
			resolved := item.ResolvedAt.Format(timestampLayout)
			row.ResolvedAt = &resolved
		}
		list = append(list, row)
	}

	return list, total, nil
}

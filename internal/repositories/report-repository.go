package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

type ReportRepositoryInterface interface {
	GetReport(ctx context.Context, filter dto.ReportFilterDTO) ([]entities.ReportItem, uint64, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) buildConditions(builder sq.SelectBuilder, filter dto.ReportFilterDTO) sq.SelectBuilder {
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"r.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"r.created_at": *filter.DateTo})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"r.status": filter.Statuses})
	}
	return builder
}

func (r *ReportRepository) GetReport(ctx context.Context, filter dto.ReportFilterDTO) ([]entities.ReportItem, uint64, error) {
	base := sq.Select(
		"r.id", "r.subject", "r.request_type", "r.status",
		"e.name", "e.serial_number", "u.username",
		"r.scheduled_date", "r.created_at", "r.resolved_at",
	).
		From("maintenance_requests r").
		Join("equipments e ON e.id = r.equipment_id").
		LeftJoin("users u ON u.id = r.technician_id").
		OrderBy("r.created_at").
		PlaceholderFormat(sq.Dollar)

	query, args, err := r.buildConditions(base, filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.ReportItem, 0)
	for rows.Next() {
		var item entities.ReportItem
		err := rows.Scan(
			&item.ID, &item.Subject, &item.RequestType, &item.Status,
			&item.EquipmentName, &item.SerialNumber, &item.TechnicianName,
			&item.ScheduledAt, &item.CreatedAt, &item.ResolvedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, uint64(len(items)), nil
}

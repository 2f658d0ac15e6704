package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	builder "gearguard/internal/infrastructure/db"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

const requestTable = "maintenance_requests"
const requestSelectFields = "r.id, r.subject, r.request_type, r.status, r.equipment_id, r.scheduled_date, r.technician_id, r.created_at, r.resolved_at, e.name, u.id, u.username"
const requestJoins = "LEFT JOIN equipments e ON e.id = r.equipment_id LEFT JOIN users u ON u.id = r.technician_id"

var requestAllowedFields = map[string]string{
	"status":        "r.status",
	"equipment_id":  "r.equipment_id",
	"technician_id": "r.technician_id",
	"request_type":  "r.request_type",
	"created_at":    "r.created_at",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	GetRequestsByStatus(ctx context.Context, status string) ([]entities.MaintenanceRequest, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error)
	GetRequestsExcludingStatus(ctx context.Context, status string) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (uint64, error)
	AssignTechnician(ctx context.Context, id uint64, technicianID uint64, status string) error
	UpdateRequestStatus(ctx context.Context, id uint64, status string, resolvedAt *time.Time) error
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var request entities.MaintenanceRequest
	var equipmentName *string
	var technicianID *uint64
	var technicianUsername *string

	err := row.Scan(
		&request.ID, &request.Subject, &request.RequestType, &request.Status,
		&request.EquipmentID, &request.ScheduledAt, &request.TechnicianID,
		&request.CreatedAt, &request.ResolvedAt,
		&equipmentName, &technicianID, &technicianUsername,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if equipmentName != nil {
		request.Equipment = &entities.Equipment{ID: request.EquipmentID, Name: *equipmentName}
	}
	if technicianID != nil && technicianUsername != nil {
		request.Technician = &entities.User{ID: *technicianID, Username: *technicianUsername}
	}
	return &request, nil
}

func (r *RequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]entities.MaintenanceRequest, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}

	return requests, rows.Err()
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	base := sq.Select(requestSelectFields).
		From(requestTable + " r").
		LeftJoin("equipments e ON e.id = r.equipment_id").
		LeftJoin("users u ON u.id = r.technician_id").
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ApplyListParams(base, filter, requestAllowedFields).ToSql()
	if err != nil {
		return nil, 0, err
	}

	requests, err := r.queryRequests(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	countBase := sq.Select("COUNT(*)").From(requestTable + " r").PlaceholderFormat(sq.Dollar)
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countQuery, countArgs, err := builder.ApplyListParams(countBase, countFilter, requestAllowedFields).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *RequestRepository) GetRequestsByStatus(ctx context.Context, status string) ([]entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s r
			%s
		WHERE r.status = $1
		ORDER BY r.id
	`, requestSelectFields, requestTable, requestJoins)

	return r.queryRequests(ctx, query, status)
}

func (r *RequestRepository) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s r
			%s
		WHERE r.equipment_id = $1
		ORDER BY r.created_at DESC
	`, requestSelectFields, requestTable, requestJoins)

	return r.queryRequests(ctx, query, equipmentID)
}

func (r *RequestRepository) GetRequestsExcludingStatus(ctx context.Context, status string) ([]entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s r
			%s
		WHERE r.status <> $1
		ORDER BY r.id
	`, requestSelectFields, requestTable, requestJoins)

	return r.queryRequests(ctx, query, status)
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s r
			%s
		WHERE r.id = $1
	`, requestSelectFields, requestTable, requestJoins)

	return scanRequest(r.storage.QueryRow(ctx, query, id))
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (uint64, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (subject, request_type, status, equipment_id, scheduled_date, technician_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now())) RETURNING id
    `, requestTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		request.Subject,
		request.RequestType,
		request.Status,
		request.EquipmentID,
		request.ScheduledAt,
		request.TechnicianID,
		request.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AssignTechnician назначает исполнителя и выставляет статус одним запросом.
func (r *RequestRepository) AssignTechnician(ctx context.Context, id uint64, technicianID uint64, status string) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET technician_id = $1, status = $2, created_at = COALESCE(created_at, now())
		WHERE id = $3
    `, requestTable)

	result, err := r.storage.Exec(ctx, query, technicianID, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRequestStatus меняет статус; resolved_at выставляется только один раз,
// повторный переход в REPAIRED метку не перезаписывает.
func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id uint64, status string, resolvedAt *time.Time) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, resolved_at = COALESCE(resolved_at, $2)
		WHERE id = $3
    `, requestTable)

	result, err := r.storage.Exec(ctx, query, status, resolvedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", requestTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

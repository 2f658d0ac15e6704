package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	builder "gearguard/internal/infrastructure/db"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

const equipmentTable = "equipments"
const equipmentSelectFields = "e.id, e.name, e.serial_number, e.team_id, e.status, e.created_at, e.updated_at, t.id, t.name"

// Поля, по которым разрешена фильтрация и сортировка списка.
var equipmentAllowedFields = map[string]string{
	"status":     "e.status",
	"team_id":    "e.team_id",
	"name":       "e.name",
	"created_at": "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	GetEquipmentsByStatus(ctx context.Context, status string) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *entities.Equipment) (uint64, error)
	UpdateEquipmentStatus(ctx context.Context, id uint64, status string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var equipment entities.Equipment
	var teamID *uint64
	var teamName *string

	err := row.Scan(
		&equipment.ID, &equipment.Name, &equipment.SerialNumber,
		&equipment.TeamID, &equipment.Status,
		&equipment.CreatedAt, &equipment.UpdatedAt,
		&teamID, &teamName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if teamID != nil && teamName != nil {
		equipment.Team = &entities.Team{ID: *teamID, Name: *teamName}
	}
	return &equipment, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	base := sq.Select(equipmentSelectFields).
		From(equipmentTable + " e").
		LeftJoin("teams t ON t.id = e.team_id").
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ApplyListParams(base, filter, equipmentAllowedFields).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *equipment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBase := sq.Select("COUNT(*)").From(equipmentTable + " e").PlaceholderFormat(sq.Dollar)
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countQuery, countArgs, err := builder.ApplyListParams(countBase, countFilter, equipmentAllowedFields).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return equipments, total, nil
}

func (r *EquipmentRepository) GetEquipmentsByStatus(ctx context.Context, status string) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s e
			LEFT JOIN teams t ON t.id = e.team_id
		WHERE e.status = $1
		ORDER BY e.id
	`, equipmentSelectFields, equipmentTable)

	rows, err := r.storage.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, *equipment)
	}

	return equipments, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s e
			LEFT JOIN teams t ON t.id = e.team_id
		WHERE e.id = $1
	`, equipmentSelectFields, equipmentTable)

	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment) (uint64, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (name, serial_number, team_id, status)
        VALUES ($1, $2, $3, $4) RETURNING id
    `, equipmentTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		equipment.Name,
		equipment.SerialNumber,
		equipment.TeamID,
		equipment.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipmentStatus(ctx context.Context, id uint64, status string) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
    `, equipmentTable)

	result, err := r.storage.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package services

import (
	"context"
	"strconv"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

// Мок-репозитории на картах в памяти. Повторяют контракт настоящих
// репозиториев, включая apperrors.ErrNotFound для отсутствующих записей.

type mockRequestRepo struct {
	requests map[uint64]*entities.MaintenanceRequest
	nextID   uint64
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{requests: make(map[uint64]*entities.MaintenanceRequest), nextID: 1}
}

func (m *mockRequestRepo) GetRequests(_ context.Context, _ types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	list := make([]entities.MaintenanceRequest, 0, len(m.requests))
	for _, request := range m.requests {
		list = append(list, *request)
	}
	return list, uint64(len(list)), nil
}

func (m *mockRequestRepo) GetRequestsByStatus(_ context.Context, status string) ([]entities.MaintenanceRequest, error) {
	var list []entities.MaintenanceRequest
	for _, request := range m.requests {
		if request.Status == status {
			list = append(list, *request)
		}
	}
	return list, nil
}

func (m *mockRequestRepo) GetRequestsByEquipment(_ context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	var list []entities.MaintenanceRequest
	for _, request := range m.requests {
		if request.EquipmentID == equipmentID {
			list = append(list, *request)
		}
	}
	return list, nil
}

func (m *mockRequestRepo) GetRequestsExcludingStatus(_ context.Context, status string) ([]entities.MaintenanceRequest, error) {
	var list []entities.MaintenanceRequest
	for _, request := range m.requests {
		if request.Status != status {
			list = append(list, *request)
		}
	}
	return list, nil
}

func (m *mockRequestRepo) FindRequest(_ context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (m *mockRequestRepo) CreateRequest(_ context.Context, request *entities.MaintenanceRequest) (uint64, error) {
	copied := *request
	copied.ID = m.nextID
	if copied.CreatedAt == nil {
		now := time.Now()
		copied.CreatedAt = &now
	}
	m.requests[copied.ID] = &copied
	m.nextID++
	return copied.ID, nil
}

func (m *mockRequestRepo) AssignTechnician(_ context.Context, id uint64, technicianID uint64, status string) error {
	request, ok := m.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	request.TechnicianID = &technicianID
	request.Status = status
	return nil
}

// UpdateRequestStatus повторяет COALESCE из SQL: уже выставленный
// resolved_at не перезаписывается.
func (m *mockRequestRepo) UpdateRequestStatus(_ context.Context, id uint64, status string, resolvedAt *time.Time) error {
	request, ok := m.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	request.Status = status
	if request.ResolvedAt == nil && resolvedAt != nil {
		request.ResolvedAt = resolvedAt
	}
	return nil
}

func (m *mockRequestRepo) DeleteRequest(_ context.Context, id uint64) error {
	if _, ok := m.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.requests, id)
	return nil
}

type mockEquipmentRepo struct {
	equipments map[uint64]*entities.Equipment
	nextID     uint64
}

func newMockEquipmentRepo() *mockEquipmentRepo {
	return &mockEquipmentRepo{equipments: make(map[uint64]*entities.Equipment), nextID: 1}
}

func (m *mockEquipmentRepo) GetEquipments(_ context.Context, _ types.Filter) ([]entities.Equipment, uint64, error) {
	list := make([]entities.Equipment, 0, len(m.equipments))
	for _, equipment := range m.equipments {
		list = append(list, *equipment)
	}
	return list, uint64(len(list)), nil
}

func (m *mockEquipmentRepo) GetEquipmentsByStatus(_ context.Context, status string) ([]entities.Equipment, error) {
	var list []entities.Equipment
	for _, equipment := range m.equipments {
		if equipment.Status == status {
			list = append(list, *equipment)
		}
	}
	return list, nil
}

func (m *mockEquipmentRepo) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	equipment, ok := m.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *equipment
	return &copied, nil
}

func (m *mockEquipmentRepo) CreateEquipment(_ context.Context, equipment *entities.Equipment) (uint64, error) {
	copied := *equipment
	copied.ID = m.nextID
	m.equipments[copied.ID] = &copied
	m.nextID++
	return copied.ID, nil
}

func (m *mockEquipmentRepo) UpdateEquipmentStatus(_ context.Context, id uint64, status string) error {
	equipment, ok := m.equipments[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	equipment.Status = status
	return nil
}

type mockUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
}

func (m *mockUserRepo) GetUsers(_ context.Context) ([]entities.User, error) {
	list := make([]entities.User, 0, len(m.users))
	for _, user := range m.users {
		list = append(list, *user)
	}
	return list, nil
}

func (m *mockUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) FindUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *entities.User) (uint64, error) {
	copied := *user
	copied.ID = m.nextID
	m.users[copied.ID] = &copied
	m.nextID++
	return copied.ID, nil
}

type mockCacheRepo struct {
	values map[string]string
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{values: make(map[string]string)}
}

func (m *mockCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s, ok := value.(string); ok {
		m.values[key] = s
	} else {
		m.values[key] = "1"
	}
	return nil
}

func (m *mockCacheRepo) Get(_ context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (m *mockCacheRepo) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *mockCacheRepo) Incr(_ context.Context, key string) (int64, error) {
	counter, _ := strconv.ParseInt(m.values[key], 10, 64)
	counter++
	m.values[key] = strconv.FormatInt(counter, 10)
	return counter, nil
}

func (m *mockCacheRepo) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

type mockTeamRepo struct {
	teams  map[uint64]*entities.Team
	nextID uint64
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[uint64]*entities.Team), nextID: 1}
}

func (m *mockTeamRepo) addTeam(name string) uint64 {
	team := &entities.Team{ID: m.nextID, Name: name}
	m.teams[team.ID] = team
	m.nextID++
	return team.ID
}

func (m *mockTeamRepo) GetTeams(_ context.Context) ([]entities.Team, error) {
	list := make([]entities.Team, 0, len(m.teams))
	for _, team := range m.teams {
		list = append(list, *team)
	}
	return list, nil
}

func (m *mockTeamRepo) FindTeam(_ context.Context, id uint64) (*entities.Team, error) {
	team, ok := m.teams[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *team
	return &copied, nil
}

type mockReportRepo struct {
	items []entities.ReportItem
}

func (m *mockReportRepo) GetReport(_ context.Context, _ dto.ReportFilterDTO) ([]entities.ReportItem, uint64, error) {
	return m.items, uint64(len(m.items)), nil
}

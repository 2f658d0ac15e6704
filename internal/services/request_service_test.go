package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

func newRequestServiceForTest() (RequestServiceInterface, *mockRequestRepo, *mockEquipmentRepo, *mockUserRepo) {
	requestRepo := newMockRequestRepo()
	equipmentRepo := newMockEquipmentRepo()
	userRepo := newMockUserRepo()
	svc := NewRequestService(requestRepo, equipmentRepo, userRepo, zap.NewNop())
	return svc, requestRepo, equipmentRepo, userRepo
}

func seedEquipment(t *testing.T, repo *mockEquipmentRepo, name string) uint64 {
	t.Helper()
	id, err := repo.CreateEquipment(context.Background(), &entities.Equipment{
		Name:   name,
		Status: constants.EquipmentStatusActive,
	})
	require.NoError(t, err)
	return id
}

func seedTechnician(t *testing.T, repo *mockUserRepo, username string) uint64 {
	t.Helper()
	id, err := repo.CreateUser(context.Background(), &entities.User{
		Username: username,
		Role:     "Technician",
	})
	require.NoError(t, err)
	return id
}

func TestRequestService_CreateRequest_ForcesNewStatus(t *testing.T) {
	svc, requestRepo, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Токарный станок")

	res, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Не включается",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusNew, res.Status)
	assert.Nil(t, res.Technician)
	assert.Nil(t, res.ResolvedAt)

	stored := requestRepo.requests[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, constants.RequestStatusNew, stored.Status)
}

func TestRequestService_CreateRequest_UnknownEquipment(t *testing.T) {
	svc, _, _, _ := newRequestServiceForTest()

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Сломалось",
		EquipmentID: 42,
	})
	require.Error(t, err)

	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
}

func TestRequestService_CreateRequest_UnknownTechnician(t *testing.T) {
	svc, _, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Пресс")

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:      "Течёт масло",
		EquipmentID:  equipmentID,
		TechnicianID: null.Uint64From(99),
	})
	require.Error(t, err)

	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
}

func TestRequestService_CreateRequest_ScheduledDate(t *testing.T) {
	svc, _, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Компрессор")

	res, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:       "Плановое ТО",
		EquipmentID:   equipmentID,
		ScheduledDate: null.StringFrom("2026-03-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.ScheduledDate)
	assert.Equal(t, "2026-03-15", *res.ScheduledDate)
}

func TestRequestService_CreateRequest_BadScheduledDateIsDropped(t *testing.T) {
	svc, _, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Компрессор")

	res, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:       "Плановое ТО",
		EquipmentID:   equipmentID,
		ScheduledDate: null.StringFrom("15.03.2026"),
	})
	require.NoError(t, err)
	assert.Nil(t, res.ScheduledDate, "нечитаемая дата должна молча отбрасываться")
}

func TestRequestService_AssignTechnician_PromotesNewToInProgress(t *testing.T) {
	svc, _, equipmentRepo, userRepo := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Фрезерный станок")
	technicianID := seedTechnician(t, userRepo, "ivanov")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Вибрация шпинделя",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	res, err := svc.AssignTechnician(context.Background(), created.ID, dto.AssignRequestDTO{TechnicianID: technicianID})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusInProgress, res.Status)
}

func TestRequestService_AssignTechnician_KeepsNonNewStatus(t *testing.T) {
	svc, requestRepo, equipmentRepo, userRepo := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Фрезерный станок")
	technicianID := seedTechnician(t, userRepo, "ivanov")
	otherID := seedTechnician(t, userRepo, "petrov")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Вибрация шпинделя",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	_, err = svc.AssignTechnician(context.Background(), created.ID, dto.AssignRequestDTO{TechnicianID: technicianID})
	require.NoError(t, err)
	_, err = svc.MoveRequest(context.Background(), created.ID, constants.RequestStatusRepaired)
	require.NoError(t, err)

	// Переназначение на уже отремонтированной заявке не трогает статус.
	res, err := svc.AssignTechnician(context.Background(), created.ID, dto.AssignRequestDTO{TechnicianID: otherID})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusRepaired, res.Status)
	assert.Equal(t, otherID, *requestRepo.requests[created.ID].TechnicianID)
}

func TestRequestService_AssignTechnician_UnknownTechnician(t *testing.T) {
	svc, requestRepo, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Пресс")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Заедает",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	_, err = svc.AssignTechnician(context.Background(), created.ID, dto.AssignRequestDTO{TechnicianID: 777})
	require.Error(t, err)

	assert.Equal(t, constants.RequestStatusNew, requestRepo.requests[created.ID].Status)
	assert.Nil(t, requestRepo.requests[created.ID].TechnicianID)
}

func TestRequestService_MoveRequest_RejectsUnknownStatus(t *testing.T) {
	svc, requestRepo, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Пресс")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Заедает",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	_, err = svc.MoveRequest(context.Background(), created.ID, "DONE")
	require.Error(t, err)

	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Code)
	// Заявка осталась нетронутой.
	assert.Equal(t, constants.RequestStatusNew, requestRepo.requests[created.ID].Status)
}

func TestRequestService_MoveRequest_RepairedStampsResolvedAtOnce(t *testing.T) {
	svc, requestRepo, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Конвейер")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Порвана лента",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	res, err := svc.MoveRequest(context.Background(), created.ID, constants.RequestStatusRepaired)
	require.NoError(t, err)
	require.NotNil(t, res.ResolvedAt)

	firstResolvedAt := *requestRepo.requests[created.ID].ResolvedAt

	// Уводим обратно в работу и снова в REPAIRED: метка времени не меняется.
	_, err = svc.MoveRequest(context.Background(), created.ID, constants.RequestStatusInProgress)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.MoveRequest(context.Background(), created.ID, constants.RequestStatusRepaired)
	require.NoError(t, err)

	assert.True(t, firstResolvedAt.Equal(*requestRepo.requests[created.ID].ResolvedAt),
		"resolved_at ставится только первым переходом в REPAIRED")
}

func TestRequestService_MoveRequest_ScrapCascadesToEquipment(t *testing.T) {
	svc, _, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Старый генератор")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Не подлежит ремонту",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	res, err := svc.MoveRequest(context.Background(), created.ID, constants.RequestStatusScrap)
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusScrap, res.Status)
	assert.Equal(t, constants.EquipmentStatusScrapped, equipmentRepo.equipments[equipmentID].Status)
	// Списание не считается ремонтом.
	assert.Nil(t, res.ResolvedAt)
}

func TestRequestService_ArchiveRequest(t *testing.T) {
	svc, requestRepo, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := seedEquipment(t, equipmentRepo, "Конвейер")

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Порвана лента",
		EquipmentID: equipmentID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ArchiveRequest(context.Background(), created.ID))
	assert.Empty(t, requestRepo.requests)

	err = svc.ArchiveRequest(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

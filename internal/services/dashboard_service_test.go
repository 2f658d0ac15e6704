package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

func TestDashboardService_GetDashboard_ColumnsArePartition(t *testing.T) {
	requestRepo := newMockRequestRepo()
	equipmentRepo := newMockEquipmentRepo()
	userRepo := newMockUserRepo()
	svc := NewDashboardService(requestRepo, equipmentRepo, userRepo, zap.NewNop())

	now := time.Now()
	statuses := []string{
		constants.RequestStatusNew,
		constants.RequestStatusNew,
		constants.RequestStatusInProgress,
		constants.RequestStatusRepaired,
		constants.RequestStatusScrap,
	}
	for _, status := range statuses {
		_, err := requestRepo.CreateRequest(context.Background(), &entities.MaintenanceRequest{
			Subject:     "Заявка",
			Status:      status,
			EquipmentID: 1,
			CreatedAt:   &now,
		})
		require.NoError(t, err)
	}

	_, err := equipmentRepo.CreateEquipment(context.Background(), &entities.Equipment{
		Name:   "Работающий станок",
		Status: constants.EquipmentStatusActive,
	})
	require.NoError(t, err)
	_, err = equipmentRepo.CreateEquipment(context.Background(), &entities.Equipment{
		Name:   "Списанный станок",
		Status: constants.EquipmentStatusScrapped,
	})
	require.NoError(t, err)

	_, err = userRepo.CreateUser(context.Background(), &entities.User{Username: "admin", Role: "Manager"})
	require.NoError(t, err)

	board, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, board.New, 2)
	assert.Len(t, board.InProgress, 1)
	assert.Len(t, board.Repaired, 1)
	assert.Len(t, board.Scrap, 1)

	// В форму создания попадает только работающее оборудование.
	require.Len(t, board.Equipments, 1)
	assert.Equal(t, "Работающий станок", board.Equipments[0].Name)

	require.Len(t, board.Users, 1)
	assert.Equal(t, "admin", board.Users[0].Username)

	assert.Equal(t, time.Now().Format("2006-01-02"), board.Today)
}

func TestDashboardService_GetDashboard_EmptyBoard(t *testing.T) {
	svc := NewDashboardService(newMockRequestRepo(), newMockEquipmentRepo(), newMockUserRepo(), zap.NewNop())

	board, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Empty(t, board.New)
	assert.Empty(t, board.InProgress)
	assert.Empty(t, board.Repaired)
	assert.Empty(t, board.Scrap)
	assert.Empty(t, board.Equipments)
	assert.Empty(t, board.Users)
}

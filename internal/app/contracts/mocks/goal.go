package mocks

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockGoalUsecase struct {
	mock.Mock
}

func (m *MockGoalUsecase) Create(ctx context.Context, request *requests.SaveGoal) (*responses.Goal, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Goal
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Goal)
	}
	return r0, args.Error(1)
}

func (m *MockGoalUsecase) Update(ctx context.Context, request *requests.SaveGoal) (*responses.Goal, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Goal
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Goal)
	}
	return r0, args.Error(1)
}

func (m *MockGoalUsecase) FindByID(ctx context.Context, userID, goalID string) (*responses.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	var r0 *responses.Goal
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Goal)
	}
	return r0, args.Error(1)
}

func (m *MockGoalUsecase) FindByPatientID(ctx context.Context, userID, patientID string) ([]responses.Goal, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 []responses.Goal
	if v := args.Get(0); v != nil {
		r0 = v.([]responses.Goal)
	}
	return r0, args.Error(1)
}

func (m *MockGoalUsecase) CountByStatus(ctx context.Context, userID, patientID string) (responses.GoalStatusCounts, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 responses.GoalStatusCounts
	if v := args.Get(0); v != nil {
		r0 = v.(responses.GoalStatusCounts)
	}
	return r0, args.Error(1)
}

func (m *MockGoalUsecase) DeleteByID(ctx context.Context, userID, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *models.Goal) (string, error) {
	args := m.Called(ctx, goal)
	return args.String(0), args.Error(1)
}

func (m *MockGoalRepository) FindByID(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	var r0 *models.Goal
	if v := args.Get(0); v != nil {
		r0 = v.(*models.Goal)
	}
	return r0, args.Error(1)
}

func (m *MockGoalRepository) FindByPatientID(ctx context.Context, userID, patientID string) ([]models.Goal, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 []models.Goal
	if v := args.Get(0); v != nil {
		r0 = v.([]models.Goal)
	}
	return r0, args.Error(1)
}

func (m *MockGoalRepository) CountByStatus(ctx context.Context, userID, patientID string) (map[string]int64, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 map[string]int64
	if v := args.Get(0); v != nil {
		r0 = v.(map[string]int64)
	}
	return r0, args.Error(1)
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *models.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteByID(ctx context.Context, userID, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	args := m.Called(ctx, userID, patientID)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

package goals

import (
	"context"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUID       = "clinician-1"
	testPatientID = "665f1c2e8b3c4a0012345678"
	testGoalID    = "665f1c2e8b3c4a00cccc0001"
)

func newGoalUsecase() (*goalUsecase, *mocks.MockGoalRepository, *mocks.MockPatientRepository, *mocks.MockRedisRepository) {
	goalRepo := new(mocks.MockGoalRepository)
	patientRepo := new(mocks.MockPatientRepository)
	redisRepo := new(mocks.MockRedisRepository)
	patientRepo.On("FindByID", mock.Anything, testUID, testPatientID).
		Return(&models.Patient{ID: testPatientID, UserID: testUID}, nil)
	redisRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	return &goalUsecase{
		GoalRepository:    goalRepo,
		PatientRepository: patientRepo,
		RedisRepository:   redisRepo,
		Log:               zap.NewNop(),
		now:               func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) },
	}, goalRepo, patientRepo, redisRepo
}

func intPtr(v int) *int { return &v }

func TestGoalUsecaseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies Defaults", func(t *testing.T) {
		usecase, goalRepo, _, redisRepo := newGoalUsecase()
		goalRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Goal")).Return(testGoalID, nil)

		response, err := usecase.Create(ctx, &requests.SaveGoal{
			Title:     "  Button a shirt  ",
			PatientID: testPatientID,
			UID:       testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, testGoalID, response.GoalID)
		assert.Equal(t, "Button a shirt", response.Title)
		assert.Equal(t, constvars.GoalCategoryFunctional, response.Category)
		assert.Equal(t, "Functional Skills", response.CategoryName)
		assert.Equal(t, constvars.GoalStatusActive, response.Status)
		assert.Equal(t, 0, response.Progress)
		redisRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		usecase, goalRepo, patientRepo, _ := newGoalUsecase()
		patientRepo.On("FindByID", mock.Anything, testUID, "missing").Return(nil, nil)

		_, err := usecase.Create(ctx, &requests.SaveGoal{Title: "x", PatientID: "missing", UID: testUID})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		goalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGoalUsecaseUpdate(t *testing.T) {
	usecase, goalRepo, _, _ := newGoalUsecase()
	goalRepo.On("FindByID", mock.Anything, testUID, testGoalID).Return(&models.Goal{
		ID:        testGoalID,
		PatientID: testPatientID,
		UserID:    testUID,
		Title:     "Catch a ball",
		Category:  constvars.GoalCategoryMotor,
		Status:    constvars.GoalStatusActive,
		Progress:  40,
	}, nil)
	goalRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Goal")).Return(nil)

	t.Run("Omitted Fields Keep Stored Values", func(t *testing.T) {
		response, err := usecase.Update(context.Background(), &requests.SaveGoal{
			Title:  "Catch a ball with both hands",
			Status: constvars.GoalStatusAchieved,
			GoalID: testGoalID,
			UID:    testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.GoalCategoryMotor, response.Category)
		assert.Equal(t, constvars.GoalStatusAchieved, response.Status)
		assert.Equal(t, "Achieved", response.StatusName)
		assert.Equal(t, 40, response.Progress)
	})

	t.Run("Progress Zero Is Applied", func(t *testing.T) {
		response, err := usecase.Update(context.Background(), &requests.SaveGoal{
			Title:    "Catch a ball",
			Progress: intPtr(0),
			GoalID:   testGoalID,
			UID:      testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, response.Progress)
	})
}

func TestGoalUsecaseCountByStatus(t *testing.T) {
	usecase, goalRepo, _, _ := newGoalUsecase()
	goalRepo.On("CountByStatus", mock.Anything, testUID, testPatientID).
		Return(map[string]int64{constvars.GoalStatusActive: 3, constvars.GoalStatusAchieved: 1, "legacy": 2}, nil)

	counts, err := usecase.CountByStatus(context.Background(), testUID, testPatientID)

	require.NoError(t, err)
	assert.Equal(t, responses.GoalStatusCounts{
		constvars.GoalStatusActive:       3,
		constvars.GoalStatusAchieved:     1,
		constvars.GoalStatusModified:     0,
		constvars.GoalStatusDiscontinued: 0,
	}, counts)
}

func TestGoalUsecaseDeleteByID(t *testing.T) {
	usecase, goalRepo, _, redisRepo := newGoalUsecase()
	goalRepo.On("FindByID", mock.Anything, testUID, testGoalID).
		Return(&models.Goal{ID: testGoalID, PatientID: testPatientID, UserID: testUID}, nil)
	goalRepo.On("DeleteByID", mock.Anything, testUID, testGoalID).Return(nil)

	require.NoError(t, usecase.DeleteByID(context.Background(), testUID, testGoalID))
	goalRepo.AssertExpectations(t)
	redisRepo.AssertNumberOfCalls(t, "Delete", 1)
}

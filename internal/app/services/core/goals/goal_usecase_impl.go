package goals

import (
	"context"
	"fmt"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/app/services/core/patients"
	"ot-tracking-service/internal/app/services/shared/redis"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type goalUsecase struct {
	GoalRepository    contracts.GoalRepository
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	Log               *zap.Logger
	now               func() time.Time
}

var (
	goalUsecaseInstance contracts.GoalUsecase
	onceGoalUsecase     sync.Once
)

func NewGoalUsecase(
	goalRepository contracts.GoalRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.GoalUsecase {
	onceGoalUsecase.Do(func() {
		goalUsecaseInstance = &goalUsecase{
			GoalRepository:    goalRepository,
			PatientRepository: patientRepository,
			RedisRepository:   redisRepository,
			Log:               logger,
			now:               time.Now,
		}
	})
	return goalUsecaseInstance
}

func (uc *goalUsecase) Create(ctx context.Context, request *requests.SaveGoal) (*responses.Goal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("goalUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, request.UID, request.PatientID)
	if err != nil {
		uc.Log.Error("goalUsecase.Create error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	goal := &models.Goal{
		PatientID: request.PatientID,
		UserID:    request.UID,
		Category:  constvars.GoalCategoryFunctional,
		Status:    constvars.GoalStatusActive,
	}
	uc.apply(goal, request)

	goalID, err := uc.GoalRepository.Create(ctx, goal)
	if err != nil {
		uc.Log.Error("goalUsecase.Create error creating goal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	goal.ID = goalID
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(goal.UserID, goal.PatientID)...)

	response := goal.ConvertIntoResponse()
	uc.Log.Info("goalUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)
	return &response, nil
}

// Update replaces the goal fields. Category, status and progress keep their
// stored values when the request leaves them out.
func (uc *goalUsecase) Update(ctx context.Context, request *requests.SaveGoal) (*responses.Goal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("goalUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, request.GoalID),
	)

	goal, err := uc.findGoal(ctx, request.UID, request.GoalID)
	if err != nil {
		return nil, err
	}
	uc.apply(goal, request)

	err = uc.GoalRepository.Update(ctx, goal)
	if err != nil {
		uc.Log.Error("goalUsecase.Update error updating goal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(goal.UserID, goal.PatientID)...)

	response := goal.ConvertIntoResponse()
	uc.Log.Info("goalUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goal.ID),
		zap.String(constvars.LoggingStatusKey, goal.Status),
	)
	return &response, nil
}

func (uc *goalUsecase) FindByID(ctx context.Context, userID, goalID string) (*responses.Goal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("goalUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)

	goal, err := uc.findGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	response := goal.ConvertIntoResponse()
	uc.Log.Info("goalUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)
	return &response, nil
}

func (uc *goalUsecase) FindByPatientID(ctx context.Context, userID, patientID string) ([]responses.Goal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("goalUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
	if err != nil {
		uc.Log.Error("goalUsecase.FindByPatientID error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	goals, err := uc.GoalRepository.FindByPatientID(ctx, userID, patientID)
	if err != nil {
		uc.Log.Error("goalUsecase.FindByPatientID error fetching goals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Goal, 0, len(goals))
	for i := range goals {
		response = append(response, goals[i].ConvertIntoResponse())
	}

	uc.Log.Info("goalUsecase.FindByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

// CountByStatus reports every goal status, including the ones with no goals.
func (uc *goalUsecase) CountByStatus(ctx context.Context, userID, patientID string) (responses.GoalStatusCounts, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("goalUsecase.CountByStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if patientID != "" {
		_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
		if err != nil {
			uc.Log.Error("goalUsecase.CountByStatus error fetching patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	counts, err := uc.GoalRepository.CountByStatus(ctx, userID, patientID)
	if err != nil {
		uc.Log.Error("goalUsecase.CountByStatus error counting goals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := CompleteStatusCounts(counts)
	uc.Log.Info("goalUsecase.CountByStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.GoalStatusActive, response[constvars.GoalStatusActive]),
	)
	return response, nil
}

func (uc *goalUsecase) DeleteByID(ctx context.Context, userID, goalID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("goalUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)

	goal, err := uc.findGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}

	err = uc.GoalRepository.DeleteByID(ctx, userID, goalID)
	if err != nil {
		uc.Log.Error("goalUsecase.DeleteByID error deleting goal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(userID, goal.PatientID)...)

	uc.Log.Info("goalUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)
	return nil
}

func (uc *goalUsecase) apply(goal *models.Goal, request *requests.SaveGoal) {
	goal.Title = strings.TrimSpace(request.Title)
	goal.Description = request.Description
	goal.TargetDate = request.TargetDate
	goal.MeasurableObjective = request.MeasurableObjective
	if request.Category != "" {
		goal.Category = request.Category
	}
	if request.Status != "" {
		goal.Status = request.Status
	}
	if request.Progress != nil {
		goal.Progress = *request.Progress
	}
	goal.Touch(uc.now())
}

func (uc *goalUsecase) findGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	goal, err := uc.GoalRepository.FindByID(ctx, userID, goalID)
	if err != nil {
		uc.Log.Error("goalUsecase.findGoal error fetching goal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGoalIDKey, goalID),
			zap.Error(err),
		)
		return nil, err
	}
	if goal == nil {
		uc.Log.Error("goalUsecase.findGoal goal not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGoalIDKey, goalID),
		)
		return nil, exceptions.ErrNotFound(fmt.Errorf("goal %s not found", goalID), "goal")
	}
	return goal, nil
}

// CompleteStatusCounts fills in zero counts for statuses without goals and
// discards unknown statuses.
func CompleteStatusCounts(counts map[string]int64) responses.GoalStatusCounts {
	result := make(responses.GoalStatusCounts, len(constvars.GoalStatusNames))
	for status := range constvars.GoalStatusNames {
		result[status] = counts[status]
	}
	return result
}

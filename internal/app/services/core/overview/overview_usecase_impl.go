package overview

import (
	"context"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/services/core/goals"
	"ot-tracking-service/internal/app/services/core/patients"
	"ot-tracking-service/internal/app/services/shared/redis"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type overviewUsecase struct {
	PatientRepository     contracts.PatientRepository
	AssessmentRepository  contracts.AssessmentRepository
	GoalRepository        contracts.GoalRepository
	SessionNoteRepository contracts.SessionNoteRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

var (
	overviewUsecaseInstance contracts.OverviewUsecase
	onceOverviewUsecase     sync.Once
)

func NewOverviewUsecase(
	patientRepository contracts.PatientRepository,
	assessmentRepository contracts.AssessmentRepository,
	goalRepository contracts.GoalRepository,
	sessionNoteRepository contracts.SessionNoteRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OverviewUsecase {
	onceOverviewUsecase.Do(func() {
		overviewUsecaseInstance = &overviewUsecase{
			PatientRepository:     patientRepository,
			AssessmentRepository:  assessmentRepository,
			GoalRepository:        goalRepository,
			SessionNoteRepository: sessionNoteRepository,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
			now:                   time.Now,
		}
	})
	return overviewUsecaseInstance
}

// GetOverview serves the dashboard counters from cache when possible. Cache
// errors degrade to a fresh computation.
func (uc *overviewUsecase) GetOverview(ctx context.Context, filter *requests.OverviewFilter) (*responses.Overview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("overviewUsecase.GetOverview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, filter.PatientID),
	)

	if filter.PatientID != "" {
		_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, filter.UID, filter.PatientID)
		if err != nil {
			uc.Log.Error("overviewUsecase.GetOverview error fetching patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	cacheKey := utils.OverviewCacheKey(filter.UID, filter.PatientID)
	var cached responses.Overview
	found, err := redis.Load(ctx, uc.RedisRepository, cacheKey, &cached)
	if err != nil {
		uc.Log.Warn("overviewUsecase.GetOverview cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	if found {
		uc.Log.Info("overviewUsecase.GetOverview succeeded from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
		)
		return &cached, nil
	}

	overview, err := uc.compute(ctx, filter)
	if err != nil {
		uc.Log.Error("overviewUsecase.GetOverview error computing overview",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, overview, uc.InternalConfig.Cache.OverviewTTL())
	if err != nil {
		uc.Log.Warn("overviewUsecase.GetOverview cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	uc.Log.Info("overviewUsecase.GetOverview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("total_patients", overview.TotalPatients),
	)
	return overview, nil
}

func (uc *overviewUsecase) compute(ctx context.Context, filter *requests.OverviewFilter) (*responses.Overview, error) {
	now := uc.now().UTC()

	totalPatients := int64(1)
	if filter.PatientID == "" {
		count, err := uc.PatientRepository.Count(ctx, filter.UID)
		if err != nil {
			return nil, err
		}
		totalPatients = count
	}

	monthStart := utils.StartOfMonth(now)
	assessmentsThisMonth, err := uc.AssessmentRepository.Count(ctx, &requests.AssessmentFilter{
		UID:          filter.UID,
		PatientID:    filter.PatientID,
		Status:       constvars.AssessmentStatusComplete,
		CreatedSince: &monthStart,
	})
	if err != nil {
		return nil, err
	}

	goalCounts, err := uc.GoalRepository.CountByStatus(ctx, filter.UID, filter.PatientID)
	if err != nil {
		return nil, err
	}
	statusCounts := goals.CompleteStatusCounts(goalCounts)

	sessionNotes, err := uc.SessionNoteRepository.Count(ctx, filter.UID, filter.PatientID)
	if err != nil {
		return nil, err
	}

	return &responses.Overview{
		PatientID:            filter.PatientID,
		TotalPatients:        totalPatients,
		AssessmentsThisMonth: assessmentsThisMonth,
		ActiveGoals:          statusCounts[constvars.GoalStatusActive],
		SessionNotesCount:    sessionNotes,
		GoalStatusCounts:     statusCounts,
		GeneratedAt:          now,
	}, nil
}

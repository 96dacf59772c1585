package assessments

import (
	"context"
	"fmt"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/app/services/core/patients"
	"ot-tracking-service/internal/app/services/shared/messaging"
	"ot-tracking-service/internal/app/services/shared/redis"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/scoring"
	"ot-tracking-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	PatientRepository    contracts.PatientRepository
	RedisRepository      contracts.RedisRepository
	EventPublisher       contracts.EventPublisher
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			AssessmentRepository: assessmentRepository,
			PatientRepository:    patientRepository,
			RedisRepository:      redisRepository,
			EventPublisher:       eventPublisher,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) Create(ctx context.Context, request *requests.SaveAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, request.UID, request.PatientID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Create error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	assessment := &models.Assessment{
		PatientID: request.PatientID,
		UserID:    request.UID,
	}
	err = uc.apply(assessment, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Create invalid responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	assessmentID, err := uc.AssessmentRepository.Create(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Create error creating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	assessment.ID = assessmentID
	uc.afterSave(ctx, assessment)

	response := assessment.ConvertIntoResponse()
	uc.Log.Info("assessmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingStatusKey, assessment.Status),
	)
	return &response, nil
}

func (uc *assessmentUsecase) Update(ctx context.Context, request *requests.SaveAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, request.AssessmentID),
	)

	assessment, err := uc.findAssessment(ctx, request.UID, request.AssessmentID)
	if err != nil {
		return nil, err
	}

	err = uc.apply(assessment, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Update invalid responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.AssessmentRepository.Update(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Update error updating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.afterSave(ctx, assessment)

	response := assessment.ConvertIntoResponse()
	uc.Log.Info("assessmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.String(constvars.LoggingStatusKey, assessment.Status),
	)
	return &response, nil
}

func (uc *assessmentUsecase) FindByID(ctx context.Context, userID, assessmentID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.findAssessment(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}

	response := assessment.ConvertIntoResponse()
	uc.Log.Info("assessmentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return &response, nil
}

func (uc *assessmentUsecase) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, filter.PatientID),
		zap.String(constvars.LoggingStatusKey, filter.Status),
	)

	if filter.PatientID != "" {
		_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, filter.UID, filter.PatientID)
		if err != nil {
			uc.Log.Error("assessmentUsecase.FindAll error fetching patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAll error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Assessment, 0, len(assessments))
	for i := range assessments {
		response = append(response, assessments[i].ConvertIntoResponse())
	}

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *assessmentUsecase) DeleteByID(ctx context.Context, userID, assessmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.findAssessment(ctx, userID, assessmentID)
	if err != nil {
		return err
	}

	err = uc.AssessmentRepository.DeleteByID(ctx, userID, assessmentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.DeleteByID error deleting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(userID, assessment.PatientID)...)

	uc.Log.Info("assessmentUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return nil
}

// apply copies the request onto the assessment and recomputes the stored
// scores from the full response set.
func (uc *assessmentUsecase) apply(assessment *models.Assessment, request *requests.SaveAssessment) error {
	parsed, err := parseResponses(request.Responses)
	if err != nil {
		return err
	}
	err = checkCompletion(request.Status, parsed)
	if err != nil {
		return err
	}

	now := uc.now().UTC()
	assessment.Type = request.Type
	assessment.Status = request.Status
	assessment.Notes = request.Notes
	assessment.Responses = parsed
	assessment.DomainAverages = scoring.AllDomainAverages(parsed)
	assessment.TotalScore = scoring.TotalScore(parsed)
	if assessment.IsComplete() {
		if assessment.CompletedAt == nil {
			assessment.CompletedAt = &now
		}
	} else {
		assessment.CompletedAt = nil
	}
	assessment.Touch(now)
	return nil
}

func (uc *assessmentUsecase) afterSave(ctx context.Context, assessment *models.Assessment) {
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(assessment.UserID, assessment.PatientID)...)
	if !assessment.IsComplete() {
		return
	}

	summary := map[string]interface{}{
		"total_score":     assessment.TotalScore,
		"max_total_score": scoring.MaxTotalScore(),
		"domain_averages": assessment.DomainAverages,
	}
	messaging.NotifyAssessmentCompleted(ctx, uc.EventPublisher, uc.Log, &requests.AssessmentCompletedEvent{
		Kind:         constvars.AssessmentKindProgram,
		AssessmentID: assessment.ID,
		PatientID:    assessment.PatientID,
		UserID:       assessment.UserID,
		Type:         assessment.Type,
		CompletedAt:  *assessment.CompletedAt,
		Summary:      summary,
	})
}

func (uc *assessmentUsecase) findAssessment(ctx context.Context, userID, assessmentID string) (*models.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	assessment, err := uc.AssessmentRepository.FindByID(ctx, userID, assessmentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.findAssessment error fetching assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if assessment == nil {
		err = exceptions.ErrNotFound(fmt.Errorf("assessment %s not found", assessmentID), "assessment")
		uc.Log.Error("assessmentUsecase.findAssessment assessment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		)
		return nil, err
	}
	return assessment, nil
}

package patients

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/app/services/shared/redis"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository       contracts.PatientRepository
	AssessmentRepository    contracts.AssessmentRepository
	ROMAssessmentRepository contracts.ROMAssessmentRepository
	GoalRepository          contracts.GoalRepository
	SessionNoteRepository   contracts.SessionNoteRepository
	RedisRepository         contracts.RedisRepository
	Log                     *zap.Logger
	now                     func() time.Time
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	assessmentRepository contracts.AssessmentRepository,
	romAssessmentRepository contracts.ROMAssessmentRepository,
	goalRepository contracts.GoalRepository,
	sessionNoteRepository contracts.SessionNoteRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository:       patientRepository,
			AssessmentRepository:    assessmentRepository,
			ROMAssessmentRepository: romAssessmentRepository,
			GoalRepository:          goalRepository,
			SessionNoteRepository:   sessionNoteRepository,
			RedisRepository:         redisRepository,
			Log:                     logger,
			now:                     time.Now,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUIDKey, request.UID),
	)

	now := uc.now()
	patient := &models.Patient{
		UserID:      request.UID,
		FirstName:   strings.TrimSpace(request.FirstName),
		LastName:    strings.TrimSpace(request.LastName),
		DateOfBirth: request.DateOfBirth,
		Diagnosis:   strings.TrimSpace(request.Diagnosis),
		Notes:       request.Notes,
	}
	patient.Touch(now)

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(request.UID, "")...)

	response := patient.ConvertIntoResponse(now)
	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context, userID string) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUIDKey, userID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx, userID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, patients[i].ConvertIntoResponse(now))
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, userID, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findOwnedPatient(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	response := patient.ConvertIntoResponse(uc.now())
	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) Update(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.findOwnedPatient(ctx, request.UID, request.PatientID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	patient.FirstName = strings.TrimSpace(request.FirstName)
	patient.LastName = strings.TrimSpace(request.LastName)
	patient.DateOfBirth = request.DateOfBirth
	patient.Diagnosis = strings.TrimSpace(request.Diagnosis)
	patient.Notes = request.Notes
	patient.Touch(now)

	err = uc.PatientRepository.Update(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := patient.ConvertIntoResponse(now)
	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	return &response, nil
}

// DeleteByID removes the patient and every record that belongs to it.
func (uc *patientUsecase) DeleteByID(ctx context.Context, userID, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := uc.findOwnedPatient(ctx, userID, patientID); err != nil {
		return err
	}

	cascades := []struct {
		name   string
		delete func(ctx context.Context, userID, patientID string) (int64, error)
	}{
		{constvars.ResourceAssessments, uc.AssessmentRepository.DeleteByPatientID},
		{constvars.ResourceROMAssessments, uc.ROMAssessmentRepository.DeleteByPatientID},
		{constvars.ResourceGoals, uc.GoalRepository.DeleteByPatientID},
		{constvars.ResourceSessionNotes, uc.SessionNoteRepository.DeleteByPatientID},
	}
	for _, cascade := range cascades {
		deleted, err := cascade.delete(ctx, userID, patientID)
		if err != nil {
			uc.Log.Error("patientUsecase.DeleteByID error deleting patient records",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.String("resource", cascade.name),
				zap.Error(err),
			)
			return err
		}
		uc.Log.Debug("patientUsecase.DeleteByID deleted patient records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("resource", cascade.name),
			zap.Int64(constvars.LoggingResponseCountKey, deleted),
		)
	}

	err := uc.PatientRepository.DeleteByID(ctx, userID, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteByID error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(userID, patientID)...)

	uc.Log.Info("patientUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (uc *patientUsecase) GetSummary(ctx context.Context, userID, patientID string) (*responses.PatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := uc.findOwnedPatient(ctx, userID, patientID); err != nil {
		return nil, err
	}

	filter := &requests.AssessmentFilter{UID: userID, PatientID: patientID}
	programCount, err := uc.AssessmentRepository.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	romCount, err := uc.ROMAssessmentRepository.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	goalCounts, err := uc.GoalRepository.CountByStatus(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}
	noteCount, err := uc.SessionNoteRepository.Count(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	summary := &responses.PatientSummary{
		PatientID:              patientID,
		ProgramAssessmentCount: programCount,
		ROMAssessmentCount:     romCount,
		ActiveGoalCount:        goalCounts[constvars.GoalStatusActive],
		SessionNoteCount:       noteCount,
	}

	uc.Log.Info("patientUsecase.GetSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return summary, nil
}

func (uc *patientUsecase) findOwnedPatient(ctx context.Context, userID, patientID string) (*models.Patient, error) {
	patient, err := FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("patientUsecase.findOwnedPatient error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	return patient, nil
}

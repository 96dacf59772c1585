package session_notes

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
	"sync"
	"time"

	"go.uber.org/zap"
)

type sessionNoteUsecase struct {
	SessionNoteRepository contracts.SessionNoteRepository
	PatientRepository     contracts.PatientRepository
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
	now                   func() time.Time
}

var (
	sessionNoteUsecaseInstance contracts.SessionNoteUsecase
	onceSessionNoteUsecase     sync.Once
)

func NewSessionNoteUsecase(
	sessionNoteRepository contracts.SessionNoteRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.SessionNoteUsecase {
	onceSessionNoteUsecase.Do(func() {
		sessionNoteUsecaseInstance = &sessionNoteUsecase{
			SessionNoteRepository: sessionNoteRepository,
			PatientRepository:     patientRepository,
			RedisRepository:       redisRepository,
			Log:                   logger,
			now:                   time.Now,
		}
	})
	return sessionNoteUsecaseInstance
}

func (uc *sessionNoteUsecase) Create(ctx context.Context, request *requests.SaveSessionNote) (*responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, request.UID, request.PatientID)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.Create error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	note := &models.SessionNote{
		PatientID:        request.PatientID,
		UserID:           request.UID,
		AttendanceStatus: constvars.AttendanceStatusCompleted,
	}
	uc.apply(note, request)

	sessionNoteID, err := uc.SessionNoteRepository.Create(ctx, note)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.Create error creating session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	note.ID = sessionNoteID
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(note.UserID, note.PatientID)...)

	response := note.ConvertIntoResponse()
	uc.Log.Info("sessionNoteUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)
	return &response, nil
}

func (uc *sessionNoteUsecase) Update(ctx context.Context, request *requests.SaveSessionNote) (*responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, request.SessionNoteID),
	)

	note, err := uc.findSessionNote(ctx, request.UID, request.SessionNoteID)
	if err != nil {
		return nil, err
	}
	uc.apply(note, request)

	err = uc.SessionNoteRepository.Update(ctx, note)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.Update error updating session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := note.ConvertIntoResponse()
	uc.Log.Info("sessionNoteUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, note.ID),
	)
	return &response, nil
}

func (uc *sessionNoteUsecase) FindByID(ctx context.Context, userID, sessionNoteID string) (*responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)

	note, err := uc.findSessionNote(ctx, userID, sessionNoteID)
	if err != nil {
		return nil, err
	}

	response := note.ConvertIntoResponse()
	uc.Log.Info("sessionNoteUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)
	return &response, nil
}

func (uc *sessionNoteUsecase) FindByPatientID(ctx context.Context, userID, patientID string) ([]responses.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.FindByPatientID error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	notes, err := uc.SessionNoteRepository.FindByPatientID(ctx, userID, patientID)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.FindByPatientID error fetching session notes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.SessionNote, 0, len(notes))
	for i := range notes {
		response = append(response, notes[i].ConvertIntoResponse())
	}

	uc.Log.Info("sessionNoteUsecase.FindByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *sessionNoteUsecase) DeleteByID(ctx context.Context, userID, sessionNoteID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionNoteUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)

	note, err := uc.findSessionNote(ctx, userID, sessionNoteID)
	if err != nil {
		return err
	}

	err = uc.SessionNoteRepository.DeleteByID(ctx, userID, sessionNoteID)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.DeleteByID error deleting session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	redis.Invalidate(ctx, uc.RedisRepository, uc.Log, utils.OverviewCacheKeys(userID, note.PatientID)...)

	uc.Log.Info("sessionNoteUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)
	return nil
}

// apply copies the request onto the note. Duration and attendance status keep
// their stored values when left out.
func (uc *sessionNoteUsecase) apply(note *models.SessionNote, request *requests.SaveSessionNote) {
	note.SessionDate = request.SessionDate
	note.Focus = request.Focus
	note.Activities = request.Activities
	note.Observations = request.Observations
	note.Progress = request.Progress
	note.NextSteps = request.NextSteps
	if request.Duration != nil {
		note.Duration = *request.Duration
	}
	if request.AttendanceStatus != "" {
		note.AttendanceStatus = request.AttendanceStatus
	}
	note.Touch(uc.now())
}

func (uc *sessionNoteUsecase) findSessionNote(ctx context.Context, userID, sessionNoteID string) (*models.SessionNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	note, err := uc.SessionNoteRepository.FindByID(ctx, userID, sessionNoteID)
	if err != nil {
		uc.Log.Error("sessionNoteUsecase.findSessionNote error fetching session note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
			zap.Error(err),
		)
		return nil, err
	}
	if note == nil {
		return nil, exceptions.ErrNotFound(fmt.Errorf("session note %s not found", sessionNoteID), "session note")
	}
	return note, nil
}

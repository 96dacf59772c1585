package rom_assessments

import (
	"context"
	"fmt"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/app/services/core/patients"
	"ot-tracking-service/internal/app/services/shared/messaging"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/scoring"
	"sync"
	"time"

	"go.uber.org/zap"
)

type romAssessmentUsecase struct {
	ROMAssessmentRepository contracts.ROMAssessmentRepository
	PatientRepository       contracts.PatientRepository
	EventPublisher          contracts.EventPublisher
	Log                     *zap.Logger
	now                     func() time.Time
}

var (
	romAssessmentUsecaseInstance contracts.ROMAssessmentUsecase
	onceROMAssessmentUsecase     sync.Once
)

func NewROMAssessmentUsecase(
	romAssessmentRepository contracts.ROMAssessmentRepository,
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ROMAssessmentUsecase {
	onceROMAssessmentUsecase.Do(func() {
		romAssessmentUsecaseInstance = &romAssessmentUsecase{
			ROMAssessmentRepository: romAssessmentRepository,
			PatientRepository:       patientRepository,
			EventPublisher:          eventPublisher,
			Log:                     logger,
			now:                     time.Now,
		}
	})
	return romAssessmentUsecaseInstance
}

func (uc *romAssessmentUsecase) Create(ctx context.Context, request *requests.SaveROMAssessment) (*responses.ROMAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("romAssessmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, request.UID, request.PatientID)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.Create error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	romAssessment := &models.ROMAssessment{
		PatientID: request.PatientID,
		UserID:    request.UID,
	}
	err = uc.apply(romAssessment, request)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.Create invalid readings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	romAssessmentID, err := uc.ROMAssessmentRepository.Create(ctx, romAssessment)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.Create error creating rom assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	romAssessment.ID = romAssessmentID

	response := romAssessment.ConvertIntoResponse()
	uc.notifyCompleted(ctx, romAssessment, &response)

	uc.Log.Info("romAssessmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
		zap.String(constvars.LoggingStatusKey, romAssessment.Status),
	)
	return &response, nil
}

func (uc *romAssessmentUsecase) Update(ctx context.Context, request *requests.SaveROMAssessment) (*responses.ROMAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("romAssessmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, request.ROMAssessmentID),
	)

	romAssessment, err := uc.findROMAssessment(ctx, request.UID, request.ROMAssessmentID)
	if err != nil {
		return nil, err
	}

	err = uc.apply(romAssessment, request)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.Update invalid readings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.ROMAssessmentRepository.Update(ctx, romAssessment)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.Update error updating rom assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := romAssessment.ConvertIntoResponse()
	uc.notifyCompleted(ctx, romAssessment, &response)

	uc.Log.Info("romAssessmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessment.ID),
		zap.String(constvars.LoggingStatusKey, romAssessment.Status),
	)
	return &response, nil
}

func (uc *romAssessmentUsecase) FindByID(ctx context.Context, userID, romAssessmentID string) (*responses.ROMAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("romAssessmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
	)

	romAssessment, err := uc.findROMAssessment(ctx, userID, romAssessmentID)
	if err != nil {
		return nil, err
	}

	response := romAssessment.ConvertIntoResponse()
	uc.Log.Info("romAssessmentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
	)
	return &response, nil
}

func (uc *romAssessmentUsecase) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]responses.ROMAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("romAssessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, filter.PatientID),
	)

	if filter.PatientID != "" {
		_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, filter.UID, filter.PatientID)
		if err != nil {
			uc.Log.Error("romAssessmentUsecase.FindAll error fetching patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	romAssessments, err := uc.ROMAssessmentRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.FindAll error fetching rom assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.ROMAssessment, 0, len(romAssessments))
	for i := range romAssessments {
		response = append(response, romAssessments[i].ConvertIntoResponse())
	}

	uc.Log.Info("romAssessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *romAssessmentUsecase) DeleteByID(ctx context.Context, userID, romAssessmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("romAssessmentUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
	)

	if _, err := uc.findROMAssessment(ctx, userID, romAssessmentID); err != nil {
		return err
	}

	err := uc.ROMAssessmentRepository.DeleteByID(ctx, userID, romAssessmentID)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.DeleteByID error deleting rom assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("romAssessmentUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
	)
	return nil
}

func (uc *romAssessmentUsecase) apply(romAssessment *models.ROMAssessment, request *requests.SaveROMAssessment) error {
	regions, err := parseRegions(request.SelectedRegions)
	if err != nil {
		return err
	}
	measurements, err := parseMeasurements(request.Measurements, regions)
	if err != nil {
		return err
	}
	err = checkCompletion(request.Status, scoring.ROMReadings{SelectedRegions: regions, Measurements: measurements})
	if err != nil {
		return err
	}

	now := uc.now().UTC()
	romAssessment.Type = request.Type
	romAssessment.Status = request.Status
	romAssessment.Notes = request.Notes
	romAssessment.SelectedRegions = regions
	romAssessment.Measurements = measurements
	if romAssessment.IsComplete() {
		if romAssessment.CompletedAt == nil {
			romAssessment.CompletedAt = &now
		}
	} else {
		romAssessment.CompletedAt = nil
	}
	romAssessment.Touch(now)
	return nil
}

func (uc *romAssessmentUsecase) notifyCompleted(ctx context.Context, romAssessment *models.ROMAssessment, response *responses.ROMAssessment) {
	if !romAssessment.IsComplete() {
		return
	}

	summary := map[string]interface{}{
		"overall_percentage": response.OverallPercentage,
		"overall_status":     response.OverallStatus,
		"selected_regions":   response.SelectedRegions,
		"region_breakdown":   response.RegionBreakdown,
	}
	messaging.NotifyAssessmentCompleted(ctx, uc.EventPublisher, uc.Log, &requests.AssessmentCompletedEvent{
		Kind:         constvars.AssessmentKindROM,
		AssessmentID: romAssessment.ID,
		PatientID:    romAssessment.PatientID,
		UserID:       romAssessment.UserID,
		Type:         romAssessment.Type,
		CompletedAt:  *romAssessment.CompletedAt,
		Summary:      summary,
	})
}

func (uc *romAssessmentUsecase) findROMAssessment(ctx context.Context, userID, romAssessmentID string) (*models.ROMAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	romAssessment, err := uc.ROMAssessmentRepository.FindByID(ctx, userID, romAssessmentID)
	if err != nil {
		uc.Log.Error("romAssessmentUsecase.findROMAssessment error fetching rom assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if romAssessment == nil {
		uc.Log.Error("romAssessmentUsecase.findROMAssessment rom assessment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
		)
		return nil, exceptions.ErrNotFound(fmt.Errorf("rom assessment %s not found", romAssessmentID), "rom assessment")
	}
	return romAssessment, nil
}

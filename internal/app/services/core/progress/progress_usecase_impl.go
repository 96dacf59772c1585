package progress

import (
	"context"
	"fmt"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/services/core/patients"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/scoring"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type progressUsecase struct {
	PatientRepository       contracts.PatientRepository
	AssessmentRepository    contracts.AssessmentRepository
	ROMAssessmentRepository contracts.ROMAssessmentRepository
	Storage                 contracts.Storage
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
	now                     func() time.Time
}

var (
	progressUsecaseInstance contracts.ProgressUsecase
	onceProgressUsecase     sync.Once
)

func NewProgressUsecase(
	patientRepository contracts.PatientRepository,
	assessmentRepository contracts.AssessmentRepository,
	romAssessmentRepository contracts.ROMAssessmentRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProgressUsecase {
	onceProgressUsecase.Do(func() {
		progressUsecaseInstance = &progressUsecase{
			PatientRepository:       patientRepository,
			AssessmentRepository:    assessmentRepository,
			ROMAssessmentRepository: romAssessmentRepository,
			Storage:                 storage,
			InternalConfig:          internalConfig,
			Log:                     logger,
			now:                     time.Now,
		}
	})
	return progressUsecaseInstance
}

func (uc *progressUsecase) GetProgramProgress(ctx context.Context, userID, patientID string) (*scoring.ProgramProgress, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("progressUsecase.GetProgramProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
	if err != nil {
		uc.Log.Error("progressUsecase.GetProgramProgress error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := uc.programProgress(ctx, userID, patientID)
	if err != nil {
		uc.Log.Error("progressUsecase.GetProgramProgress error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("progressUsecase.GetProgramProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, result.Summary.TotalAssessments),
	)
	return result, nil
}

func (uc *progressUsecase) GetROMProgress(ctx context.Context, userID, patientID string) (*scoring.ROMProgress, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("progressUsecase.GetROMProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
	if err != nil {
		uc.Log.Error("progressUsecase.GetROMProgress error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := uc.romProgress(ctx, userID, patientID)
	if err != nil {
		uc.Log.Error("progressUsecase.GetROMProgress error fetching rom assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("progressUsecase.GetROMProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, result.Summary.CompletedAssessments),
	)
	return result, nil
}

// ExportReport stores the combined progress document in object storage and
// returns a presigned link to it.
func (uc *progressUsecase) ExportReport(ctx context.Context, userID, patientID string) (*responses.ProgressReportExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("progressUsecase.ExportReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := patients.FindOwnedPatient(ctx, uc.PatientRepository, userID, patientID)
	if err != nil {
		uc.Log.Error("progressUsecase.ExportReport error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	program, err := uc.programProgress(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}
	rom, err := uc.romProgress(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	generatedAt := uc.now().UTC()
	report := responses.ProgressReport{
		Patient:     patient.ConvertIntoResponse(generatedAt),
		Program:     *program,
		ROM:         *rom,
		GeneratedAt: generatedAt,
	}
	payload, err := json.Marshal(report)
	if err != nil {
		uc.Log.Error("progressUsecase.ExportReport error marshaling report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := fmt.Sprintf("%s/%s/%s.json", constvars.ResourceProgressReports, patientID, uuid.New().String())
	storedName, err := uc.Storage.UploadJSON(ctx, bucketName, objectName, payload)
	if err != nil {
		uc.Log.Error("progressUsecase.ExportReport error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := uc.InternalConfig.Minio.PreSignedURLExpiry()
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, storedName, expiry)
	if err != nil {
		uc.Log.Error("progressUsecase.ExportReport error presigning report url",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, storedName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("progressUsecase.ExportReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, storedName),
	)
	return &responses.ProgressReportExport{
		ObjectName:  storedName,
		URL:         url,
		ExpiresAt:   generatedAt.Add(expiry),
		GeneratedAt: generatedAt,
	}, nil
}

func (uc *progressUsecase) programProgress(ctx context.Context, userID, patientID string) (*scoring.ProgramProgress, error) {
	assessments, err := uc.AssessmentRepository.FindAll(ctx, &requests.AssessmentFilter{
		UID:       userID,
		PatientID: patientID,
		Status:    constvars.AssessmentStatusComplete,
	})
	if err != nil {
		return nil, err
	}

	records := make([]scoring.ProgramRecord, 0, len(assessments))
	for i := range assessments {
		records = append(records, assessments[i].ToProgramRecord())
	}
	result := scoring.BuildProgramProgress(records)
	return &result, nil
}

func (uc *progressUsecase) romProgress(ctx context.Context, userID, patientID string) (*scoring.ROMProgress, error) {
	romAssessments, err := uc.ROMAssessmentRepository.FindAll(ctx, &requests.AssessmentFilter{
		UID:       userID,
		PatientID: patientID,
		Status:    constvars.AssessmentStatusComplete,
	})
	if err != nil {
		return nil, err
	}

	records := make([]scoring.ROMRecord, 0, len(romAssessments))
	for i := range romAssessments {
		records = append(records, romAssessments[i].ToROMRecord())
	}
	result := scoring.BuildROMProgress(records)
	return &result, nil
}

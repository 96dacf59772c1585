package rom_assessments

import (
	"context"
	"errors"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/scoring"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUID             = "clinician-1"
	testPatientID       = "665f1c2e8b3c4a0012345678"
	testROMAssessmentID = "665f1c2e8b3c4a00aaaabbbb"
)

var fixedNow = time.Date(2025, 4, 2, 14, 0, 0, 0, time.UTC)

func newROMUsecase() (*romAssessmentUsecase, *mocks.MockROMAssessmentRepository, *mocks.MockPatientRepository, *mocks.MockEventPublisher) {
	romRepo := new(mocks.MockROMAssessmentRepository)
	patientRepo := new(mocks.MockPatientRepository)
	publisher := new(mocks.MockEventPublisher)
	patientRepo.On("FindByID", mock.Anything, testUID, testPatientID).
		Return(&models.Patient{ID: testPatientID, UserID: testUID}, nil)

	return &romAssessmentUsecase{
		ROMAssessmentRepository: romRepo,
		PatientRepository:       patientRepo,
		EventPublisher:          publisher,
		Log:                     zap.NewNop(),
		now:                     func() time.Time { return fixedNow },
	}, romRepo, patientRepo, publisher
}

func requireStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr, "error should be a CustomError")
	assert.Equal(t, statusCode, customErr.StatusCode, "unexpected status code")
}

func TestParseRegions(t *testing.T) {
	t.Run("Deduplicates In Order", func(t *testing.T) {
		regions, err := parseRegions([]string{"knee", "shoulder", "knee"})
		require.NoError(t, err)
		assert.Equal(t, []catalog.Region{catalog.RegionKnee, catalog.RegionShoulder}, regions)
	})

	t.Run("Unknown Region", func(t *testing.T) {
		_, err := parseRegions([]string{"neck"})
		requireStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestParseMeasurements(t *testing.T) {
	regions := []catalog.Region{catalog.RegionShoulder, catalog.RegionSpine}

	t.Run("Drops Absent And Unselected Readings", func(t *testing.T) {
		measurements, err := parseMeasurements(map[string]interface{}{
			"shoulder_flexion_left":   90.0,
			"shoulder_flexion_right":  "170",
			"shoulder_abduction_left": "",
			"shoulder_adduction_left": "n/a",
			"lumbar_flexion":          0,
			"knee_flexion_left":       120,
		}, regions)

		require.NoError(t, err)
		assert.Equal(t, scoring.Measurements{
			"shoulder_flexion_left":  90,
			"shoulder_flexion_right": 170,
		}, measurements)
	})

	t.Run("Unknown Key", func(t *testing.T) {
		_, err := parseMeasurements(map[string]interface{}{"shoulder_flexion": 90}, regions)
		requireStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("Negative Reading", func(t *testing.T) {
		_, err := parseMeasurements(map[string]interface{}{"lumbar_rotation_left": -5}, regions)
		requireStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("Non Finite Values Are Dropped", func(t *testing.T) {
		measurements, err := parseMeasurements(map[string]interface{}{
			"shoulder_flexion_left":   "Infinity",
			"shoulder_flexion_right":  "NaN",
			"shoulder_abduction_left": "-Inf",
			"shoulder_extension_left": 45,
		}, regions)

		require.NoError(t, err)
		assert.Equal(t, scoring.Measurements{"shoulder_extension_left": 45}, measurements)
	})

	t.Run("Reading Above Full Turn", func(t *testing.T) {
		_, err := parseMeasurements(map[string]interface{}{"shoulder_extension_left": 1e20}, regions)
		requireStatus(t, err, constvars.StatusBadRequest)

		_, err = parseMeasurements(map[string]interface{}{"shoulder_extension_left": "361"}, regions)
		requireStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestROMAssessmentUsecaseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Complete Scores And Publishes", func(t *testing.T) {
		usecase, romRepo, _, publisher := newROMUsecase()
		romRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ROMAssessment")).Return(testROMAssessmentID, nil)
		publisher.On("PublishAssessmentCompleted", mock.Anything, mock.MatchedBy(func(event *requests.AssessmentCompletedEvent) bool {
			return event.Kind == constvars.AssessmentKindROM && event.Summary["overall_percentage"] == 75
		})).Return(nil)

		response, err := usecase.Create(ctx, &requests.SaveROMAssessment{
			Type:            constvars.AssessmentTypePre,
			Status:          constvars.AssessmentStatusComplete,
			SelectedRegions: []string{"shoulder"},
			Measurements: map[string]interface{}{
				"shoulder_flexion_left":  90,
				"shoulder_flexion_right": "180",
				"knee_flexion_left":      100,
			},
			PatientID: testPatientID,
			UID:       testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, testROMAssessmentID, response.ROMAssessmentID)
		assert.Equal(t, 75, response.OverallPercentage)
		assert.Equal(t, scoring.ROMStatusMild, response.OverallStatus)
		assert.NotContains(t, response.Measurements, "knee_flexion_left", "unselected region readings should be dropped")
		require.Len(t, response.Results, 2)
		require.Len(t, response.RegionBreakdown, 1)
		assert.Equal(t, 75, response.RegionBreakdown[0].Percentage)
		require.NotNil(t, response.CompletedAt)
		publisher.AssertExpectations(t)
	})

	t.Run("Draft Without Regions", func(t *testing.T) {
		usecase, romRepo, _, publisher := newROMUsecase()
		romRepo.On("Create", mock.Anything, mock.Anything).Return(testROMAssessmentID, nil)

		response, err := usecase.Create(ctx, &requests.SaveROMAssessment{
			Type:      constvars.AssessmentTypePre,
			Status:    constvars.AssessmentStatusDraft,
			PatientID: testPatientID,
			UID:       testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, response.OverallPercentage)
		assert.Equal(t, scoring.ROMStatusSevere, response.OverallStatus)
		assert.NotNil(t, response.SelectedRegions)
		assert.NotNil(t, response.Measurements)
		publisher.AssertNotCalled(t, "PublishAssessmentCompleted", mock.Anything, mock.Anything)
	})

	t.Run("Complete Requires Region", func(t *testing.T) {
		usecase, romRepo, _, _ := newROMUsecase()

		_, err := usecase.Create(ctx, &requests.SaveROMAssessment{
			Type:      constvars.AssessmentTypePre,
			Status:    constvars.AssessmentStatusComplete,
			PatientID: testPatientID,
			UID:       testUID,
		})

		requireStatus(t, err, constvars.StatusBadRequest)
		romRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Complete Requires Reading", func(t *testing.T) {
		usecase, _, _, _ := newROMUsecase()

		_, err := usecase.Create(ctx, &requests.SaveROMAssessment{
			Type:            constvars.AssessmentTypePre,
			Status:          constvars.AssessmentStatusComplete,
			SelectedRegions: []string{"wrist"},
			Measurements:    map[string]interface{}{"wrist_flexion_left": "", "ankle_eversion_left": 10},
			PatientID:       testPatientID,
			UID:             testUID,
		})

		requireStatus(t, err, constvars.StatusBadRequest)
		assert.Contains(t, err.Error(), constvars.ErrDevROMMeasurementRequired)
	})

	t.Run("Repository Error", func(t *testing.T) {
		usecase, romRepo, _, _ := newROMUsecase()
		romRepo.On("Create", mock.Anything, mock.Anything).Return("", exceptions.ErrMongoDBInsertDocument(errors.New("write concern")))

		_, err := usecase.Create(ctx, &requests.SaveROMAssessment{
			Type:      constvars.AssessmentTypePost,
			Status:    constvars.AssessmentStatusDraft,
			PatientID: testPatientID,
			UID:       testUID,
		})

		requireStatus(t, err, constvars.StatusInternalServerError)
	})
}

func TestROMAssessmentUsecaseUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deselecting Region Removes Readings", func(t *testing.T) {
		usecase, romRepo, _, _ := newROMUsecase()
		romRepo.On("FindByID", mock.Anything, testUID, testROMAssessmentID).Return(&models.ROMAssessment{
			ID:              testROMAssessmentID,
			PatientID:       testPatientID,
			UserID:          testUID,
			Status:          constvars.AssessmentStatusDraft,
			SelectedRegions: []catalog.Region{catalog.RegionShoulder, catalog.RegionKnee},
			Measurements:    map[string]float64{"shoulder_flexion_left": 90, "knee_flexion_left": 135},
		}, nil)
		romRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.ROMAssessment) bool {
			_, hasShoulder := a.Measurements["shoulder_flexion_left"]
			return !hasShoulder && a.Measurements["knee_flexion_left"] == 135
		})).Return(nil)

		response, err := usecase.Update(ctx, &requests.SaveROMAssessment{
			Type:            constvars.AssessmentTypePre,
			Status:          constvars.AssessmentStatusDraft,
			SelectedRegions: []string{"knee"},
			Measurements:    map[string]interface{}{"shoulder_flexion_left": 90, "knee_flexion_left": 135},
			ROMAssessmentID: testROMAssessmentID,
			UID:             testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, 100, response.OverallPercentage)
		assert.Equal(t, scoring.ROMStatusNormal, response.OverallStatus)
		romRepo.AssertExpectations(t)
	})

	t.Run("Other Clinician Gets Not Found", func(t *testing.T) {
		usecase, romRepo, _, _ := newROMUsecase()
		romRepo.On("FindByID", mock.Anything, "other", testROMAssessmentID).Return(nil, nil)

		_, err := usecase.Update(ctx, &requests.SaveROMAssessment{
			Status:          constvars.AssessmentStatusDraft,
			ROMAssessmentID: testROMAssessmentID,
			UID:             "other",
		})

		requireStatus(t, err, constvars.StatusNotFound)
	})
}

func TestROMAssessmentUsecaseDeleteByID(t *testing.T) {
	usecase, romRepo, _, _ := newROMUsecase()
	romRepo.On("FindByID", mock.Anything, testUID, testROMAssessmentID).
		Return(&models.ROMAssessment{ID: testROMAssessmentID, UserID: testUID}, nil)
	romRepo.On("DeleteByID", mock.Anything, testUID, testROMAssessmentID).Return(nil)

	require.NoError(t, usecase.DeleteByID(context.Background(), testUID, testROMAssessmentID))
	romRepo.AssertExpectations(t)
}

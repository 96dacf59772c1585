package assessments

import (
	"context"
	"errors"
	"fmt"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUID          = "clinician-1"
	testPatientID    = "665f1c2e8b3c4a0012345678"
	testAssessmentID = "665f1c2e8b3c4a0087654321"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type assessmentFixture struct {
	usecase     *assessmentUsecase
	assessments *mocks.MockAssessmentRepository
	patients    *mocks.MockPatientRepository
	redis       *mocks.MockRedisRepository
	publisher   *mocks.MockEventPublisher
}

func newAssessmentFixture() *assessmentFixture {
	f := &assessmentFixture{
		assessments: new(mocks.MockAssessmentRepository),
		patients:    new(mocks.MockPatientRepository),
		redis:       new(mocks.MockRedisRepository),
		publisher:   new(mocks.MockEventPublisher),
	}
	f.usecase = &assessmentUsecase{
		AssessmentRepository: f.assessments,
		PatientRepository:    f.patients,
		RedisRepository:      f.redis,
		EventPublisher:       f.publisher,
		Log:                  zap.NewNop(),
		now:                  func() time.Time { return fixedNow },
	}
	f.redis.On("Delete", mock.Anything, mock.Anything).Return(nil)
	return f
}

func (f *assessmentFixture) ownPatient() {
	f.patients.On("FindByID", mock.Anything, testUID, testPatientID).
		Return(&models.Patient{ID: testPatientID, UserID: testUID}, nil)
}

func fullResponses(rating int) map[string]interface{} {
	responses := make(map[string]interface{}, 17)
	for i := 1; i <= 17; i++ {
		responses[fmt.Sprintf("q%d", i)] = rating
	}
	return responses
}

func requireStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr, "error should be a CustomError")
	assert.Equal(t, statusCode, customErr.StatusCode, "unexpected status code")
}

func TestAssessmentUsecaseCreate(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Draft Stores Partial Scores", func(t *testing.T) {
		f := newAssessmentFixture()
		f.ownPatient()
		f.assessments.On("Create", mock.Anything, mock.AnythingOfType("*models.Assessment")).Return(testAssessmentID, nil)

		response, err := f.usecase.Create(ctx, &requests.SaveAssessment{
			Type:      constvars.AssessmentTypePre,
			Status:    constvars.AssessmentStatusDraft,
			Responses: map[string]interface{}{"q1": 5, "q2": "3", "q3": "", "q6": 2.0},
			PatientID: testPatientID,
			UID:       testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, testAssessmentID, response.AssessmentID)
		assert.Equal(t, map[string]int{"q1": 5, "q2": 3, "q6": 2}, response.Responses, "blank rating should be dropped")
		require.NotNil(t, response.DomainAverages.Play)
		assert.Equal(t, 4.0, *response.DomainAverages.Play)
		require.NotNil(t, response.DomainAverages.SelfCare)
		assert.Equal(t, 2.0, *response.DomainAverages.SelfCare)
		assert.Nil(t, response.DomainAverages.FineMotor, "unanswered domain has no average")
		assert.Equal(t, 10, response.TotalScore)
		assert.Equal(t, 85, response.MaxTotalScore)
		assert.Nil(t, response.CompletedAt)
		assert.Equal(t, fixedNow, response.CreatedAt)
		f.publisher.AssertNotCalled(t, "PublishAssessmentCompleted", mock.Anything, mock.Anything)
		f.redis.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Complete Publishes Event", func(t *testing.T) {
		f := newAssessmentFixture()
		f.ownPatient()
		f.assessments.On("Create", mock.Anything, mock.AnythingOfType("*models.Assessment")).Return(testAssessmentID, nil)
		f.publisher.On("PublishAssessmentCompleted", mock.Anything, mock.MatchedBy(func(event *requests.AssessmentCompletedEvent) bool {
			return event.Kind == constvars.AssessmentKindProgram &&
				event.AssessmentID == testAssessmentID &&
				event.PatientID == testPatientID &&
				event.Summary["total_score"] == 68
		})).Return(nil)

		response, err := f.usecase.Create(ctx, &requests.SaveAssessment{
			Type:      constvars.AssessmentTypePost,
			Status:    constvars.AssessmentStatusComplete,
			Responses: fullResponses(4),
			PatientID: testPatientID,
			UID:       testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, 68, response.TotalScore)
		require.NotNil(t, response.CompletedAt)
		assert.Equal(t, fixedNow, *response.CompletedAt)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail Save", func(t *testing.T) {
		f := newAssessmentFixture()
		f.ownPatient()
		f.assessments.On("Create", mock.Anything, mock.Anything).Return(testAssessmentID, nil)
		f.publisher.On("PublishAssessmentCompleted", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		response, err := f.usecase.Create(ctx, &requests.SaveAssessment{
			Type:      constvars.AssessmentTypePre,
			Status:    constvars.AssessmentStatusComplete,
			Responses: fullResponses(5),
			PatientID: testPatientID,
			UID:       testUID,
		})

		require.NoError(t, err)
		assert.Equal(t, 85, response.TotalScore)
	})

	t.Run("Complete With Missing Answers", func(t *testing.T) {
		f := newAssessmentFixture()
		f.ownPatient()
		responses := fullResponses(3)
		delete(responses, "q9")
		responses["q12"] = ""

		_, err := f.usecase.Create(ctx, &requests.SaveAssessment{
			Type:      constvars.AssessmentTypePre,
			Status:    constvars.AssessmentStatusComplete,
			Responses: responses,
			PatientID: testPatientID,
			UID:       testUID,
		})

		requireStatus(t, err, constvars.StatusBadRequest)
		assert.Contains(t, err.Error(), "q9", "first missing question should be reported")
		f.assessments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	invalid := []struct {
		name      string
		responses map[string]interface{}
	}{
		{"Unknown Question", map[string]interface{}{"q99": 3}},
		{"Rating Above Scale", map[string]interface{}{"q1": 6}},
		{"Rating Below Scale", map[string]interface{}{"q1": "0"}},
		{"Fractional Rating", map[string]interface{}{"q1": 3.5}},
		{"Non Numeric Rating", map[string]interface{}{"q1": "often"}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newAssessmentFixture()
			f.ownPatient()

			_, err := f.usecase.Create(ctx, &requests.SaveAssessment{
				Type:      constvars.AssessmentTypePre,
				Status:    constvars.AssessmentStatusDraft,
				Responses: tc.responses,
				PatientID: testPatientID,
				UID:       testUID,
			})

			requireStatus(t, err, constvars.StatusBadRequest)
			f.assessments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("Patient Of Another Clinician", func(t *testing.T) {
		f := newAssessmentFixture()
		f.patients.On("FindByID", mock.Anything, "other", testPatientID).Return(nil, nil)

		_, err := f.usecase.Create(ctx, &requests.SaveAssessment{
			Type:      constvars.AssessmentTypePre,
			Status:    constvars.AssessmentStatusDraft,
			PatientID: testPatientID,
			UID:       "other",
		})

		requireStatus(t, err, constvars.StatusNotFound)
	})
}

func TestAssessmentUsecaseUpdate(t *testing.T) {
	ctx := context.Background()
	completedAt := fixedNow.Add(-48 * time.Hour)

	t.Run("Reopening Clears Completion", func(t *testing.T) {
		f := newAssessmentFixture()
		f.assessments.On("FindByID", mock.Anything, testUID, testAssessmentID).Return(&models.Assessment{
			ID:          testAssessmentID,
			PatientID:   testPatientID,
			UserID:      testUID,
			Type:        constvars.AssessmentTypePre,
			Status:      constvars.AssessmentStatusComplete,
			CompletedAt: &completedAt,
			TimeModel:   models.TimeModel{CreatedAt: completedAt, UpdatedAt: completedAt},
		}, nil)
		f.assessments.On("Update", mock.Anything, mock.AnythingOfType("*models.Assessment")).Return(nil)

		response, err := f.usecase.Update(ctx, &requests.SaveAssessment{
			Type:         constvars.AssessmentTypePre,
			Status:       constvars.AssessmentStatusDraft,
			Responses:    map[string]interface{}{"q15": 1},
			AssessmentID: testAssessmentID,
			UID:          testUID,
		})

		require.NoError(t, err)
		assert.Nil(t, response.CompletedAt)
		assert.Equal(t, completedAt, response.CreatedAt, "createdAt should not move")
		assert.Equal(t, fixedNow, response.UpdatedAt)
		assert.Equal(t, 1, response.TotalScore)
	})

	t.Run("Keeps First Completion Time", func(t *testing.T) {
		f := newAssessmentFixture()
		f.assessments.On("FindByID", mock.Anything, testUID, testAssessmentID).Return(&models.Assessment{
			ID:          testAssessmentID,
			PatientID:   testPatientID,
			UserID:      testUID,
			Status:      constvars.AssessmentStatusComplete,
			CompletedAt: &completedAt,
		}, nil)
		f.assessments.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("PublishAssessmentCompleted", mock.Anything, mock.Anything).Return(nil)

		response, err := f.usecase.Update(ctx, &requests.SaveAssessment{
			Type:         constvars.AssessmentTypePost,
			Status:       constvars.AssessmentStatusComplete,
			Responses:    fullResponses(2),
			AssessmentID: testAssessmentID,
			UID:          testUID,
		})

		require.NoError(t, err)
		require.NotNil(t, response.CompletedAt)
		assert.Equal(t, completedAt, *response.CompletedAt)
		assert.Equal(t, constvars.AssessmentTypePost, response.Type)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newAssessmentFixture()
		f.assessments.On("FindByID", mock.Anything, testUID, testAssessmentID).Return(nil, nil)

		_, err := f.usecase.Update(ctx, &requests.SaveAssessment{
			Status:       constvars.AssessmentStatusDraft,
			AssessmentID: testAssessmentID,
			UID:          testUID,
		})

		requireStatus(t, err, constvars.StatusNotFound)
		f.assessments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAssessmentUsecaseFindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters By Owned Patient", func(t *testing.T) {
		f := newAssessmentFixture()
		f.ownPatient()
		filter := &requests.AssessmentFilter{UID: testUID, PatientID: testPatientID, Status: constvars.AssessmentStatusComplete}
		f.assessments.On("FindAll", mock.Anything, filter).Return([]models.Assessment{
			{ID: "b", PatientID: testPatientID, Status: constvars.AssessmentStatusComplete},
			{ID: "a", PatientID: testPatientID, Status: constvars.AssessmentStatusComplete},
		}, nil)

		response, err := f.usecase.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, response, 2)
		assert.Equal(t, "b", response[0].AssessmentID, "repository order should be kept")
		assert.NotNil(t, response[1].Responses, "responses should never be null")
	})

	t.Run("All Patients Skips Ownership Check", func(t *testing.T) {
		f := newAssessmentFixture()
		filter := &requests.AssessmentFilter{UID: testUID}
		f.assessments.On("FindAll", mock.Anything, filter).Return([]models.Assessment{}, nil)

		response, err := f.usecase.FindAll(ctx, filter)

		require.NoError(t, err)
		assert.Empty(t, response)
		f.patients.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAssessmentUsecaseDeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes And Invalidates Overview", func(t *testing.T) {
		f := newAssessmentFixture()
		f.assessments.On("FindByID", mock.Anything, testUID, testAssessmentID).
			Return(&models.Assessment{ID: testAssessmentID, PatientID: testPatientID, UserID: testUID}, nil)
		f.assessments.On("DeleteByID", mock.Anything, testUID, testAssessmentID).Return(nil)

		require.NoError(t, f.usecase.DeleteByID(ctx, testUID, testAssessmentID))
		f.assessments.AssertExpectations(t)
		f.redis.AssertCalled(t, "Delete", mock.Anything, []string{
			"overview:" + testUID + ":all",
			"overview:" + testUID + ":" + testPatientID,
		})
	})

	t.Run("Repository Error", func(t *testing.T) {
		f := newAssessmentFixture()
		f.assessments.On("FindByID", mock.Anything, testUID, testAssessmentID).
			Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("connection reset")))

		err := f.usecase.DeleteByID(ctx, testUID, testAssessmentID)
		requireStatus(t, err, constvars.StatusInternalServerError)
	})
}

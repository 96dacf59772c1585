package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUID       = "clinician-1"
	testPatientID = "665f1c2e8b3c4a0012345678"
)

var testConfig = &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5}}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, router http.Handler, method, target, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	if authenticated {
		ctx = context.WithValue(ctx, constvars.CONTEXT_UID_KEY, testUID)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req.WithContext(ctx))

	var env envelope
	if rr.Code < 400 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "success body should be a response envelope")
	}
	return rr, env
}

func TestPatientController(t *testing.T) {
	usecase := new(mocks.MockPatientUsecase)
	ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase, InternalConfig: testConfig}

	router := chi.NewRouter()
	router.Post("/patients", ctrl.Create)
	router.Get("/patients", ctrl.FindAll)
	router.Get("/patients/{patient_id}", ctrl.FindByID)
	router.Delete("/patients/{patient_id}", ctrl.DeleteByID)

	t.Run("Create", func(t *testing.T) {
		usecase.On("Create", mock.Anything, mock.MatchedBy(func(req *requests.CreatePatient) bool {
			return req.UID == testUID && req.FirstName == "Ada"
		})).Return(&responses.Patient{PatientID: testPatientID, FirstName: "Ada"}, nil).Once()

		rr, env := serve(t, router, http.MethodPost, "/patients",
			`{"first_name":"Ada","last_name":"Lovelace","date_of_birth":"2017-06-02"}`, true)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), testPatientID)
	})

	t.Run("Create Rejects Invalid Date", func(t *testing.T) {
		rr, _ := serve(t, router, http.MethodPost, "/patients",
			`{"first_name":"Ada","last_name":"Lovelace","date_of_birth":"02/06/2017"}`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Create Rejects Malformed JSON", func(t *testing.T) {
		rr, _ := serve(t, router, http.MethodPost, "/patients", `{"first_name":`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rr, _ := serve(t, router, http.MethodGet, "/patients", "", false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("FindAll Carries Count", func(t *testing.T) {
		usecase.On("FindAll", mock.Anything, testUID).
			Return([]responses.Patient{{PatientID: "a"}, {PatientID: "b"}}, nil).Once()

		rr, env := serve(t, router, http.MethodGet, "/patients", "", true)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, env.Count)
		assert.Equal(t, 2, *env.Count)
	})

	t.Run("FindByID Not Found", func(t *testing.T) {
		usecase.On("FindByID", mock.Anything, testUID, testPatientID).
			Return(nil, exceptions.ErrPatientNotOwned(nil, testPatientID)).Once()

		rr, _ := serve(t, router, http.MethodGet, "/patients/"+testPatientID, "", true)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Deadline Maps To Gateway Timeout", func(t *testing.T) {
		usecase.On("DeleteByID", mock.Anything, testUID, testPatientID).Return(context.DeadlineExceeded).Once()

		rr, _ := serve(t, router, http.MethodDelete, "/patients/"+testPatientID, "", true)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestAssessmentController(t *testing.T) {
	usecase := new(mocks.MockAssessmentUsecase)
	ctrl := &AssessmentController{Log: zap.NewNop(), AssessmentUsecase: usecase, InternalConfig: testConfig}

	router := chi.NewRouter()
	router.Post("/patients/{patient_id}/assessments", ctrl.Create)
	router.Get("/patients/{patient_id}/assessments", ctrl.FindByPatientID)
	router.Get("/assessments", ctrl.FindAll)

	t.Run("Create Passes Raw Responses", func(t *testing.T) {
		usecase.On("Create", mock.Anything, mock.MatchedBy(func(req *requests.SaveAssessment) bool {
			return req.PatientID == testPatientID && req.Responses["q2"] == "3" && req.Status == constvars.AssessmentStatusDraft
		})).Return(&responses.Assessment{AssessmentID: "a1", Status: constvars.AssessmentStatusDraft}, nil).Once()

		rr, _ := serve(t, router, http.MethodPost, "/patients/"+testPatientID+"/assessments",
			`{"type":"pre","status":"in_progress","responses":{"q1":5,"q2":"3"}}`, true)

		assert.Equal(t, http.StatusCreated, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Create Rejects Unknown Type", func(t *testing.T) {
		rr, _ := serve(t, router, http.MethodPost, "/patients/"+testPatientID+"/assessments",
			`{"type":"midway","status":"in_progress"}`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Usecase Validation Error", func(t *testing.T) {
		usecase.On("Create", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrAssessmentIncomplete(nil, "q9")).Once()

		rr, _ := serve(t, router, http.MethodPost, "/patients/"+testPatientID+"/assessments",
			`{"type":"pre","status":"complete","responses":{"q1":5}}`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("FindAll Applies Query Filters", func(t *testing.T) {
		usecase.On("FindAll", mock.Anything, &requests.AssessmentFilter{
			PatientID: testPatientID,
			Status:    constvars.AssessmentStatusComplete,
			Type:      constvars.AssessmentTypePost,
			UID:       testUID,
		}).Return([]responses.Assessment{}, nil).Once()

		rr, env := serve(t, router, http.MethodGet, "/assessments?patient_id="+testPatientID+"&status=complete&type=post", "", true)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 0, *env.Count)
	})

	t.Run("FindAll Rejects Unknown Status", func(t *testing.T) {
		rr, _ := serve(t, router, http.MethodGet, "/assessments?status=done", "", true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("FindByPatientID Uses Path", func(t *testing.T) {
		usecase.On("FindAll", mock.Anything, &requests.AssessmentFilter{PatientID: testPatientID, UID: testUID}).
			Return([]responses.Assessment{{AssessmentID: "a1"}}, nil).Once()

		rr, env := serve(t, router, http.MethodGet, "/patients/"+testPatientID+"/assessments", "", true)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, *env.Count)
	})
}

func TestProgressController(t *testing.T) {
	progress := new(mocks.MockProgressUsecase)
	overview := new(mocks.MockOverviewUsecase)
	ctrl := &ProgressController{Log: zap.NewNop(), ProgressUsecase: progress, OverviewUsecase: overview, InternalConfig: testConfig}

	router := chi.NewRouter()
	router.Post("/patients/{patient_id}/progress/report", ctrl.ExportReport)
	router.Get("/overview", ctrl.GetOverview)

	t.Run("Export", func(t *testing.T) {
		progress.On("ExportReport", mock.Anything, testUID, testPatientID).
			Return(&responses.ProgressReportExport{ObjectName: "progress-reports/x.json", URL: "https://minio/x"}, nil).Once()

		rr, env := serve(t, router, http.MethodPost, "/patients/"+testPatientID+"/progress/report", "", true)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, string(env.Data), "https://minio/x")
	})

	t.Run("Overview Narrowed By Query", func(t *testing.T) {
		overview.On("GetOverview", mock.Anything, &requests.OverviewFilter{PatientID: testPatientID, UID: testUID}).
			Return(&responses.Overview{PatientID: testPatientID, TotalPatients: 1}, nil).Once()

		rr, env := serve(t, router, http.MethodGet, "/overview?patient_id="+testPatientID, "", true)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, string(env.Data), `"total_patients":1`)
	})
}

func TestCatalogController(t *testing.T) {
	usecase := new(mocks.MockCatalogUsecase)
	ctrl := &CatalogController{Log: zap.NewNop(), CatalogUsecase: usecase, InternalConfig: testConfig}

	router := chi.NewRouter()
	router.Get("/catalogs/rom", ctrl.GetROMCatalog)
	router.Post("/catalogs/refresh", ctrl.Refresh)

	t.Run("ROM Catalog Without Login", func(t *testing.T) {
		usecase.On("GetROMCatalog", mock.Anything).Return(&responses.ROMCatalog{}, nil).Once()

		rr, env := serve(t, router, http.MethodGet, "/catalogs/rom", "", false)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.GetCatalogSuccessMessage, env.Message)
	})

	t.Run("Refresh Failure", func(t *testing.T) {
		usecase.On("Refresh", mock.Anything).Return(exceptions.ErrRedisDelete(nil)).Once()

		rr, _ := serve(t, router, http.MethodPost, "/catalogs/refresh", "", false)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

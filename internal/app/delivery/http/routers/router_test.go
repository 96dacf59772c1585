package routers

import (
	"net/http"
	"net/http/httptest"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/app/delivery/http/controllers"
	"ot-tracking-service/internal/app/delivery/http/middlewares"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "router-secret"

type routerFixture struct {
	router   *chi.Mux
	patients *mocks.MockPatientUsecase
	progress *mocks.MockProgressUsecase
	catalogs *mocks.MockCatalogUsecase
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "/api",
			CORSAllowedOrigins:         []string{"*"},
			MaxRequests:                100,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 1,
			RequestTimeoutInSeconds:    5,
			ReportExportPerMinute:      1,
			ReportExportBurst:          1,
			ReportExportBlockInSeconds: 60,
		},
		JWT: config.AppJWT{Secret: testSecret},
	}

	f := &routerFixture{
		router:   chi.NewRouter(),
		patients: new(mocks.MockPatientUsecase),
		progress: new(mocks.MockProgressUsecase),
		catalogs: new(mocks.MockCatalogUsecase),
	}
	handlers := &Controllers{
		Patient:       &controllers.PatientController{Log: logger, PatientUsecase: f.patients, InternalConfig: internalConfig},
		Assessment:    &controllers.AssessmentController{Log: logger, AssessmentUsecase: new(mocks.MockAssessmentUsecase), InternalConfig: internalConfig},
		ROMAssessment: &controllers.ROMAssessmentController{Log: logger, ROMAssessmentUsecase: new(mocks.MockROMAssessmentUsecase), InternalConfig: internalConfig},
		Goal:          &controllers.GoalController{Log: logger, GoalUsecase: new(mocks.MockGoalUsecase), InternalConfig: internalConfig},
		SessionNote:   &controllers.SessionNoteController{Log: logger, SessionNoteUsecase: new(mocks.MockSessionNoteUsecase), InternalConfig: internalConfig},
		Progress:      &controllers.ProgressController{Log: logger, ProgressUsecase: f.progress, OverviewUsecase: new(mocks.MockOverviewUsecase), InternalConfig: internalConfig},
		Catalog:       &controllers.CatalogController{Log: logger, CatalogUsecase: f.catalogs, InternalConfig: internalConfig},
	}
	SetupRoutes(f.router, logger, internalConfig, middlewares.NewMiddlewares(logger, internalConfig), handlers)
	return f
}

func bearer(t *testing.T, uid string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestSetupRoutes(t *testing.T) {
	t.Run("Catalogs Are Public", func(t *testing.T) {
		f := newRouterFixture()
		f.catalogs.On("GetProgramEvaluationCatalog", mock.Anything).Return(&responses.ProgramEvaluationCatalog{MaxTotalScore: 85}, nil)

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/catalogs/program-evaluation", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "request id should be echoed")
	})

	t.Run("Catalog Refresh Needs API Key", func(t *testing.T) {
		f := newRouterFixture()

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/catalogs/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		f.catalogs.AssertNotCalled(t, "Refresh", mock.Anything)
	})

	t.Run("Patients Need Token", func(t *testing.T) {
		f := newRouterFixture()

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Patient Routes Reach Controller", func(t *testing.T) {
		f := newRouterFixture()
		f.patients.On("GetSummary", mock.Anything, "clinician-1", "p1").Return(&responses.PatientSummary{PatientID: "p1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/p1/summary", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearer(t, "clinician-1"))
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.patients.AssertExpectations(t)
	})

	t.Run("Report Export Is Throttled", func(t *testing.T) {
		f := newRouterFixture()
		f.progress.On("ExportReport", mock.Anything, "clinician-1", "p1").Return(&responses.ProgressReportExport{ObjectName: "x"}, nil)

		export := func() int {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/patients/p1/progress/report", nil)
			req.Header.Set(constvars.HeaderAuthorization, bearer(t, "clinician-1"))
			rr := httptest.NewRecorder()
			f.router.ServeHTTP(rr, req)
			return rr.Code
		}

		assert.Equal(t, http.StatusCreated, export())
		assert.Equal(t, http.StatusTooManyRequests, export(), "second export inside the window is rejected")
		f.progress.AssertNumberOfCalls(t, "ExportReport", 1)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		f := newRouterFixture()

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

package routers

import (
	"net/http"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/delivery/http/controllers"
	"ot-tracking-service/internal/app/delivery/http/middlewares"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/utils"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// Controllers groups the HTTP handlers mounted by SetupRoutes.
type Controllers struct {
	Patient       *controllers.PatientController
	Assessment    *controllers.AssessmentController
	ROMAssessment *controllers.ROMAssessmentController
	Goal          *controllers.GoalController
	SessionNote   *controllers.SessionNoteController
	Progress      *controllers.ProgressController
	Catalog       *controllers.CatalogController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	handlers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{"Accept", constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID, constvars.HeaderAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.Limit(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(logger, w, exceptions.ErrTooManyRequests(nil))
		}),
	))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	exportLimiter := middlewares.NewReportExportLimiter()

	basePath := path.Join("/", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	router.Route(basePath, func(r chi.Router) {
		r.Route("/catalogs", func(r chi.Router) {
			attachCatalogRoutes(r, middlewares, handlers.Catalog)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, handlers, exportLimiter)
			})
			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, handlers.Assessment)
			})
			r.Route("/rom-assessments", func(r chi.Router) {
				attachROMAssessmentRoutes(r, handlers.ROMAssessment)
			})
			r.Route("/goals", func(r chi.Router) {
				attachGoalRoutes(r, handlers.Goal)
			})
			r.Route("/session-notes", func(r chi.Router) {
				attachSessionNoteRoutes(r, handlers.SessionNote)
			})
			r.Get("/overview", handlers.Progress.GetOverview)
		})
	})
}

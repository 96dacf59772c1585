package routers

import (
	"ot-tracking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, handlers *Controllers, exportLimiter *middlewares.RateLimiter) {
	router.Post("/", handlers.Patient.Create)
	router.Get("/", handlers.Patient.FindAll)

	router.Route("/{patient_id}", func(r chi.Router) {
		r.Get("/", handlers.Patient.FindByID)
		r.Put("/", handlers.Patient.Update)
		r.Delete("/", handlers.Patient.DeleteByID)
		r.Get("/summary", handlers.Patient.GetSummary)

		r.Post("/assessments", handlers.Assessment.Create)
		r.Get("/assessments", handlers.Assessment.FindByPatientID)

		r.Post("/rom-assessments", handlers.ROMAssessment.Create)
		r.Get("/rom-assessments", handlers.ROMAssessment.FindByPatientID)

		r.Post("/goals", handlers.Goal.Create)
		r.Get("/goals", handlers.Goal.FindByPatientID)
		r.Get("/goals/counts", handlers.Goal.CountByStatus)

		r.Post("/session-notes", handlers.SessionNote.Create)
		r.Get("/session-notes", handlers.SessionNote.FindByPatientID)

		r.Get("/progress/program", handlers.Progress.GetProgramProgress)
		r.Get("/progress/rom", handlers.Progress.GetROMProgress)
		r.With(exportLimiter.Limit).Post("/progress/report", handlers.Progress.ExportReport)
	})
}

package routers

import (
	"ot-tracking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, assessmentController *controllers.AssessmentController) {
	router.Get("/", assessmentController.FindAll)
	router.Get("/{assessment_id}", assessmentController.FindByID)
	router.Put("/{assessment_id}", assessmentController.Update)
	router.Delete("/{assessment_id}", assessmentController.DeleteByID)
}

func attachROMAssessmentRoutes(router chi.Router, romAssessmentController *controllers.ROMAssessmentController) {
	router.Get("/", romAssessmentController.FindAll)
	router.Get("/{rom_assessment_id}", romAssessmentController.FindByID)
	router.Put("/{rom_assessment_id}", romAssessmentController.Update)
	router.Delete("/{rom_assessment_id}", romAssessmentController.DeleteByID)
}

package routers

import (
	"ot-tracking-service/internal/app/delivery/http/controllers"
	"ot-tracking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/program-evaluation", catalogController.GetProgramEvaluationCatalog)
	router.Get("/rom", catalogController.GetROMCatalog)
	router.With(middlewares.RequireAdminAPIKey).Post("/refresh", catalogController.Refresh)
}

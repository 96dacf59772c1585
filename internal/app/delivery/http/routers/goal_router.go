package routers

import (
	"ot-tracking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachGoalRoutes(router chi.Router, goalController *controllers.GoalController) {
	router.Get("/{goal_id}", goalController.FindByID)
	router.Put("/{goal_id}", goalController.Update)
	router.Delete("/{goal_id}", goalController.DeleteByID)
}

func attachSessionNoteRoutes(router chi.Router, sessionNoteController *controllers.SessionNoteController) {
	router.Get("/{session_note_id}", sessionNoteController.FindByID)
	router.Put("/{session_note_id}", sessionNoteController.Update)
	router.Delete("/{session_note_id}", sessionNoteController.DeleteByID)
}

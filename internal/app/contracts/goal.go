package contracts

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
)

type GoalUsecase interface {
	Create(ctx context.Context, request *requests.SaveGoal) (*responses.Goal, error)
	Update(ctx context.Context, request *requests.SaveGoal) (*responses.Goal, error)
	FindByID(ctx context.Context, userID, goalID string) (*responses.Goal, error)
	FindByPatientID(ctx context.Context, userID, patientID string) ([]responses.Goal, error)
	CountByStatus(ctx context.Context, userID, patientID string) (responses.GoalStatusCounts, error)
	DeleteByID(ctx context.Context, userID, goalID string) error
}

type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) (string, error)
	FindByID(ctx context.Context, userID, goalID string) (*models.Goal, error)
	FindByPatientID(ctx context.Context, userID, patientID string) ([]models.Goal, error)
	// CountByStatus groups goals by status; an empty patientID counts every
	// goal of the clinician.
	CountByStatus(ctx context.Context, userID, patientID string) (map[string]int64, error)
	Update(ctx context.Context, goal *models.Goal) error
	DeleteByID(ctx context.Context, userID, goalID string) error
	DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error)
}

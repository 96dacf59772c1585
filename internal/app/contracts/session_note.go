package contracts

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
)

type SessionNoteUsecase interface {
	Create(ctx context.Context, request *requests.SaveSessionNote) (*responses.SessionNote, error)
	Update(ctx context.Context, request *requests.SaveSessionNote) (*responses.SessionNote, error)
	FindByID(ctx context.Context, userID, sessionNoteID string) (*responses.SessionNote, error)
	FindByPatientID(ctx context.Context, userID, patientID string) ([]responses.SessionNote, error)
	DeleteByID(ctx context.Context, userID, sessionNoteID string) error
}

type SessionNoteRepository interface {
	Create(ctx context.Context, note *models.SessionNote) (string, error)
	FindByID(ctx context.Context, userID, sessionNoteID string) (*models.SessionNote, error)
	FindByPatientID(ctx context.Context, userID, patientID string) ([]models.SessionNote, error)
	Count(ctx context.Context, userID, patientID string) (int64, error)
	Update(ctx context.Context, note *models.SessionNote) error
	DeleteByID(ctx context.Context, userID, sessionNoteID string) error
	DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error)
}

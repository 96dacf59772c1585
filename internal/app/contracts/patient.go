package contracts

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindAll(ctx context.Context, userID string) ([]responses.Patient, error)
	FindByID(ctx context.Context, userID, patientID string) (*responses.Patient, error)
	Update(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error)
	DeleteByID(ctx context.Context, userID, patientID string) error
	GetSummary(ctx context.Context, userID, patientID string) (*responses.PatientSummary, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (string, error)
	FindAll(ctx context.Context, userID string) ([]models.Patient, error)
	FindByID(ctx context.Context, userID, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, userID, patientID string) error
	Count(ctx context.Context, userID string) (int64, error)
}

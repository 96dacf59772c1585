package contracts

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	Create(ctx context.Context, request *requests.SaveAssessment) (*responses.Assessment, error)
	Update(ctx context.Context, request *requests.SaveAssessment) (*responses.Assessment, error)
	FindByID(ctx context.Context, userID, assessmentID string) (*responses.Assessment, error)
	FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]responses.Assessment, error)
	DeleteByID(ctx context.Context, userID, assessmentID string) error
}

// AssessmentRepository stores program evaluations. Queries always scope by
// userId and list newest first.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *models.Assessment) (string, error)
	FindByID(ctx context.Context, userID, assessmentID string) (*models.Assessment, error)
	FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]models.Assessment, error)
	Count(ctx context.Context, filter *requests.AssessmentFilter) (int64, error)
	Update(ctx context.Context, assessment *models.Assessment) error
	DeleteByID(ctx context.Context, userID, assessmentID string) error
	DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error)
}

type ROMAssessmentUsecase interface {
	Create(ctx context.Context, request *requests.SaveROMAssessment) (*responses.ROMAssessment, error)
	Update(ctx context.Context, request *requests.SaveROMAssessment) (*responses.ROMAssessment, error)
	FindByID(ctx context.Context, userID, romAssessmentID string) (*responses.ROMAssessment, error)
	FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]responses.ROMAssessment, error)
	DeleteByID(ctx context.Context, userID, romAssessmentID string) error
}

type ROMAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.ROMAssessment) (string, error)
	FindByID(ctx context.Context, userID, romAssessmentID string) (*models.ROMAssessment, error)
	FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]models.ROMAssessment, error)
	Count(ctx context.Context, filter *requests.AssessmentFilter) (int64, error)
	Update(ctx context.Context, assessment *models.ROMAssessment) error
	DeleteByID(ctx context.Context, userID, romAssessmentID string) error
	DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error)
}

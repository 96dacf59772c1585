package contracts

import (
	"context"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/scoring"
)

type ProgressUsecase interface {
	GetProgramProgress(ctx context.Context, userID, patientID string) (*scoring.ProgramProgress, error)
	GetROMProgress(ctx context.Context, userID, patientID string) (*scoring.ROMProgress, error)
	ExportReport(ctx context.Context, userID, patientID string) (*responses.ProgressReportExport, error)
}

type OverviewUsecase interface {
	GetOverview(ctx context.Context, filter *requests.OverviewFilter) (*responses.Overview, error)
}

type CatalogUsecase interface {
	GetProgramEvaluationCatalog(ctx context.Context) (*responses.ProgramEvaluationCatalog, error)
	GetROMCatalog(ctx context.Context) (*responses.ROMCatalog, error)
	Refresh(ctx context.Context) error
}

package mocks

import (
	"context"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/scoring"

	"github.com/stretchr/testify/mock"
)

type MockProgressUsecase struct {
	mock.Mock
}

func (m *MockProgressUsecase) GetProgramProgress(ctx context.Context, userID, patientID string) (*scoring.ProgramProgress, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 *scoring.ProgramProgress
	if v := args.Get(0); v != nil {
		r0 = v.(*scoring.ProgramProgress)
	}
	return r0, args.Error(1)
}

func (m *MockProgressUsecase) GetROMProgress(ctx context.Context, userID, patientID string) (*scoring.ROMProgress, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 *scoring.ROMProgress
	if v := args.Get(0); v != nil {
		r0 = v.(*scoring.ROMProgress)
	}
	return r0, args.Error(1)
}

func (m *MockProgressUsecase) ExportReport(ctx context.Context, userID, patientID string) (*responses.ProgressReportExport, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 *responses.ProgressReportExport
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.ProgressReportExport)
	}
	return r0, args.Error(1)
}

type MockOverviewUsecase struct {
	mock.Mock
}

func (m *MockOverviewUsecase) GetOverview(ctx context.Context, filter *requests.OverviewFilter) (*responses.Overview, error) {
	args := m.Called(ctx, filter)
	var r0 *responses.Overview
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Overview)
	}
	return r0, args.Error(1)
}

type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) GetProgramEvaluationCatalog(ctx context.Context) (*responses.ProgramEvaluationCatalog, error) {
	args := m.Called(ctx)
	var r0 *responses.ProgramEvaluationCatalog
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.ProgramEvaluationCatalog)
	}
	return r0, args.Error(1)
}

func (m *MockCatalogUsecase) GetROMCatalog(ctx context.Context) (*responses.ROMCatalog, error) {
	args := m.Called(ctx)
	var r0 *responses.ROMCatalog
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.ROMCatalog)
	}
	return r0, args.Error(1)
}

func (m *MockCatalogUsecase) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

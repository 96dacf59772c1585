package mocks

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) Create(ctx context.Context, request *requests.SaveAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Assessment
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Assessment)
	}
	return r0, args.Error(1)
}

func (m *MockAssessmentUsecase) Update(ctx context.Context, request *requests.SaveAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Assessment
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Assessment)
	}
	return r0, args.Error(1)
}

func (m *MockAssessmentUsecase) FindByID(ctx context.Context, userID, assessmentID string) (*responses.Assessment, error) {
	args := m.Called(ctx, userID, assessmentID)
	var r0 *responses.Assessment
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Assessment)
	}
	return r0, args.Error(1)
}

func (m *MockAssessmentUsecase) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]responses.Assessment, error) {
	args := m.Called(ctx, filter)
	var r0 []responses.Assessment
	if v := args.Get(0); v != nil {
		r0 = v.([]responses.Assessment)
	}
	return r0, args.Error(1)
}

func (m *MockAssessmentUsecase) DeleteByID(ctx context.Context, userID, assessmentID string) error {
	args := m.Called(ctx, userID, assessmentID)
	return args.Error(0)
}

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	args := m.Called(ctx, assessment)
	return args.String(0), args.Error(1)
}

func (m *MockAssessmentRepository) FindByID(ctx context.Context, userID, assessmentID string) (*models.Assessment, error) {
	args := m.Called(ctx, userID, assessmentID)
	var r0 *models.Assessment
	if v := args.Get(0); v != nil {
		r0 = v.(*models.Assessment)
	}
	return r0, args.Error(1)
}

func (m *MockAssessmentRepository) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]models.Assessment, error) {
	args := m.Called(ctx, filter)
	var r0 []models.Assessment
	if v := args.Get(0); v != nil {
		r0 = v.([]models.Assessment)
	}
	return r0, args.Error(1)
}

func (m *MockAssessmentRepository) Count(ctx context.Context, filter *requests.AssessmentFilter) (int64, error) {
	args := m.Called(ctx, filter)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

func (m *MockAssessmentRepository) Update(ctx context.Context, assessment *models.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) DeleteByID(ctx context.Context, userID, assessmentID string) error {
	args := m.Called(ctx, userID, assessmentID)
	return args.Error(0)
}

func (m *MockAssessmentRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	args := m.Called(ctx, userID, patientID)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

type MockROMAssessmentUsecase struct {
	mock.Mock
}

func (m *MockROMAssessmentUsecase) Create(ctx context.Context, request *requests.SaveROMAssessment) (*responses.ROMAssessment, error) {
	args := m.Called(ctx, request)
	var r0 *responses.ROMAssessment
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.ROMAssessment)
	}
	return r0, args.Error(1)
}

func (m *MockROMAssessmentUsecase) Update(ctx context.Context, request *requests.SaveROMAssessment) (*responses.ROMAssessment, error) {
	args := m.Called(ctx, request)
	var r0 *responses.ROMAssessment
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.ROMAssessment)
	}
	return r0, args.Error(1)
}

func (m *MockROMAssessmentUsecase) FindByID(ctx context.Context, userID, romAssessmentID string) (*responses.ROMAssessment, error) {
	args := m.Called(ctx, userID, romAssessmentID)
	var r0 *responses.ROMAssessment
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.ROMAssessment)
	}
	return r0, args.Error(1)
}

func (m *MockROMAssessmentUsecase) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]responses.ROMAssessment, error) {
	args := m.Called(ctx, filter)
	var r0 []responses.ROMAssessment
	if v := args.Get(0); v != nil {
		r0 = v.([]responses.ROMAssessment)
	}
	return r0, args.Error(1)
}

func (m *MockROMAssessmentUsecase) DeleteByID(ctx context.Context, userID, romAssessmentID string) error {
	args := m.Called(ctx, userID, romAssessmentID)
	return args.Error(0)
}

type MockROMAssessmentRepository struct {
	mock.Mock
}

func (m *MockROMAssessmentRepository) Create(ctx context.Context, assessment *models.ROMAssessment) (string, error) {
	args := m.Called(ctx, assessment)
	return args.String(0), args.Error(1)
}

func (m *MockROMAssessmentRepository) FindByID(ctx context.Context, userID, romAssessmentID string) (*models.ROMAssessment, error) {
	args := m.Called(ctx, userID, romAssessmentID)
	var r0 *models.ROMAssessment
	if v := args.Get(0); v != nil {
		r0 = v.(*models.ROMAssessment)
	}
	return r0, args.Error(1)
}

func (m *MockROMAssessmentRepository) FindAll(ctx context.Context, filter *requests.AssessmentFilter) ([]models.ROMAssessment, error) {
	args := m.Called(ctx, filter)
	var r0 []models.ROMAssessment
	if v := args.Get(0); v != nil {
		r0 = v.([]models.ROMAssessment)
	}
	return r0, args.Error(1)
}

func (m *MockROMAssessmentRepository) Count(ctx context.Context, filter *requests.AssessmentFilter) (int64, error) {
	args := m.Called(ctx, filter)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

func (m *MockROMAssessmentRepository) Update(ctx context.Context, assessment *models.ROMAssessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockROMAssessmentRepository) DeleteByID(ctx context.Context, userID, romAssessmentID string) error {
	args := m.Called(ctx, userID, romAssessmentID)
	return args.Error(0)
}

func (m *MockROMAssessmentRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	args := m.Called(ctx, userID, patientID)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

package mocks

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Patient
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Patient)
	}
	return r0, args.Error(1)
}

func (m *MockPatientUsecase) FindAll(ctx context.Context, userID string) ([]responses.Patient, error) {
	args := m.Called(ctx, userID)
	var r0 []responses.Patient
	if v := args.Get(0); v != nil {
		r0 = v.([]responses.Patient)
	}
	return r0, args.Error(1)
}

func (m *MockPatientUsecase) FindByID(ctx context.Context, userID, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 *responses.Patient
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Patient)
	}
	return r0, args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Patient
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.Patient)
	}
	return r0, args.Error(1)
}

func (m *MockPatientUsecase) DeleteByID(ctx context.Context, userID, patientID string) error {
	args := m.Called(ctx, userID, patientID)
	return args.Error(0)
}

func (m *MockPatientUsecase) GetSummary(ctx context.Context, userID, patientID string) (*responses.PatientSummary, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 *responses.PatientSummary
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.PatientSummary)
	}
	return r0, args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, userID string) ([]models.Patient, error) {
	args := m.Called(ctx, userID)
	var r0 []models.Patient
	if v := args.Get(0); v != nil {
		r0 = v.([]models.Patient)
	}
	return r0, args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, userID, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 *models.Patient
	if v := args.Get(0); v != nil {
		r0 = v.(*models.Patient)
	}
	return r0, args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, userID, patientID string) error {
	args := m.Called(ctx, userID, patientID)
	return args.Error(0)
}

func (m *MockPatientRepository) Count(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

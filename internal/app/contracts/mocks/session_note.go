package mocks

import (
	"context"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockSessionNoteUsecase struct {
	mock.Mock
}

func (m *MockSessionNoteUsecase) Create(ctx context.Context, request *requests.SaveSessionNote) (*responses.SessionNote, error) {
	args := m.Called(ctx, request)
	var r0 *responses.SessionNote
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.SessionNote)
	}
	return r0, args.Error(1)
}

func (m *MockSessionNoteUsecase) Update(ctx context.Context, request *requests.SaveSessionNote) (*responses.SessionNote, error) {
	args := m.Called(ctx, request)
	var r0 *responses.SessionNote
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.SessionNote)
	}
	return r0, args.Error(1)
}

func (m *MockSessionNoteUsecase) FindByID(ctx context.Context, userID, sessionNoteID string) (*responses.SessionNote, error) {
	args := m.Called(ctx, userID, sessionNoteID)
	var r0 *responses.SessionNote
	if v := args.Get(0); v != nil {
		r0 = v.(*responses.SessionNote)
	}
	return r0, args.Error(1)
}

func (m *MockSessionNoteUsecase) FindByPatientID(ctx context.Context, userID, patientID string) ([]responses.SessionNote, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 []responses.SessionNote
	if v := args.Get(0); v != nil {
		r0 = v.([]responses.SessionNote)
	}
	return r0, args.Error(1)
}

func (m *MockSessionNoteUsecase) DeleteByID(ctx context.Context, userID, sessionNoteID string) error {
	args := m.Called(ctx, userID, sessionNoteID)
	return args.Error(0)
}

type MockSessionNoteRepository struct {
	mock.Mock
}

func (m *MockSessionNoteRepository) Create(ctx context.Context, note *models.SessionNote) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *MockSessionNoteRepository) FindByID(ctx context.Context, userID, sessionNoteID string) (*models.SessionNote, error) {
	args := m.Called(ctx, userID, sessionNoteID)
	var r0 *models.SessionNote
	if v := args.Get(0); v != nil {
		r0 = v.(*models.SessionNote)
	}
	return r0, args.Error(1)
}

func (m *MockSessionNoteRepository) FindByPatientID(ctx context.Context, userID, patientID string) ([]models.SessionNote, error) {
	args := m.Called(ctx, userID, patientID)
	var r0 []models.SessionNote
	if v := args.Get(0); v != nil {
		r0 = v.([]models.SessionNote)
	}
	return r0, args.Error(1)
}

func (m *MockSessionNoteRepository) Count(ctx context.Context, userID, patientID string) (int64, error) {
	args := m.Called(ctx, userID, patientID)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

func (m *MockSessionNoteRepository) Update(ctx context.Context, note *models.SessionNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockSessionNoteRepository) DeleteByID(ctx context.Context, userID, sessionNoteID string) error {
	args := m.Called(ctx, userID, sessionNoteID)
	return args.Error(0)
}

func (m *MockSessionNoteRepository) DeleteByPatientID(ctx context.Context, userID, patientID string) (int64, error) {
	args := m.Called(ctx, userID, patientID)
	r0 := args.Get(0).(int64)
	return r0, args.Error(1)
}

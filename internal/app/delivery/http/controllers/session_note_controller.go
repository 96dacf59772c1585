package controllers

import (
	"context"
	"net/http"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionNoteController struct {
	Log                *zap.Logger
	SessionNoteUsecase contracts.SessionNoteUsecase
	InternalConfig     *config.InternalConfig
}

var (
	sessionNoteControllerInstance *SessionNoteController
	onceSessionNoteController     sync.Once
)

func NewSessionNoteController(logger *zap.Logger, sessionNoteUsecase contracts.SessionNoteUsecase, internalConfig *config.InternalConfig) *SessionNoteController {
	onceSessionNoteController.Do(func() {
		instance := &SessionNoteController{
			Log:                logger,
			SessionNoteUsecase: sessionNoteUsecase,
			InternalConfig:     internalConfig,
		}
		sessionNoteControllerInstance = instance
	})
	return sessionNoteControllerInstance
}

func (ctrl *SessionNoteController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "SessionNoteController.Create"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveSessionNote)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, result.SessionNoteID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionNoteSuccessMessage, result)
}

func (ctrl *SessionNoteController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "SessionNoteController.Update"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveSessionNote)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.SessionNoteID = chi.URLParam(r, constvars.URLParamSessionNoteID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.Update(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, result.SessionNoteID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSessionNoteSuccessMessage, result)
}

func (ctrl *SessionNoteController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "SessionNoteController.FindByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	sessionNoteID := chi.URLParam(r, constvars.URLParamSessionNoteID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.FindByID(ctx, uid, sessionNoteID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionNoteSuccessMessage, result)
}

func (ctrl *SessionNoteController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	const method = "SessionNoteController.FindByPatientID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.SessionNoteUsecase.FindByPatientID(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetSessionNotesSuccessMessage, len(result), result)
}

func (ctrl *SessionNoteController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	const method = "SessionNoteController.DeleteByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	sessionNoteID := chi.URLParam(r, constvars.URLParamSessionNoteID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.SessionNoteUsecase.DeleteByID(ctx, uid, sessionNoteID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionNoteIDKey, sessionNoteID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSessionNoteSuccessMessage, nil)
}

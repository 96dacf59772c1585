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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
			InternalConfig: internalConfig,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "PatientController.Create"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.CreatePatient)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, result.PatientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, result)
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	const method = "PatientController.FindAll"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx, uid)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, len(result), result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "PatientController.FindByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByID(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, result)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "PatientController.Update"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.UpdatePatient)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Update(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, result)
}

func (ctrl *PatientController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	const method = "PatientController.DeleteByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.PatientUsecase.DeleteByID(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

func (ctrl *PatientController) GetSummary(w http.ResponseWriter, r *http.Request) {
	const method = "PatientController.GetSummary"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.GetSummary(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSummarySuccessMessage, result)
}

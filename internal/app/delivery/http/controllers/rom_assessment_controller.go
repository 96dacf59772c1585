package controllers

import (
	"context"
	"net/http"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ROMAssessmentController struct {
	Log                  *zap.Logger
	ROMAssessmentUsecase contracts.ROMAssessmentUsecase
	InternalConfig       *config.InternalConfig
}

var (
	romAssessmentControllerInstance *ROMAssessmentController
	onceROMAssessmentController     sync.Once
)

func NewROMAssessmentController(logger *zap.Logger, romAssessmentUsecase contracts.ROMAssessmentUsecase, internalConfig *config.InternalConfig) *ROMAssessmentController {
	onceROMAssessmentController.Do(func() {
		instance := &ROMAssessmentController{
			Log:                  logger,
			ROMAssessmentUsecase: romAssessmentUsecase,
			InternalConfig:       internalConfig,
		}
		romAssessmentControllerInstance = instance
	})
	return romAssessmentControllerInstance
}

func (ctrl *ROMAssessmentController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "ROMAssessmentController.Create"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveROMAssessment)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ROMAssessmentUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.ROMAssessmentID),
		zap.String(constvars.LoggingStatusKey, result.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateROMAssessmentSuccessMessage, result)
}

func (ctrl *ROMAssessmentController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "ROMAssessmentController.Update"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveROMAssessment)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.ROMAssessmentID = chi.URLParam(r, constvars.URLParamROMAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ROMAssessmentUsecase.Update(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.ROMAssessmentID),
		zap.String(constvars.LoggingStatusKey, result.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateROMAssessmentSuccessMessage, result)
}

func (ctrl *ROMAssessmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "ROMAssessmentController.FindByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	romAssessmentID := chi.URLParam(r, constvars.URLParamROMAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ROMAssessmentUsecase.FindByID(ctx, uid, romAssessmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetROMAssessmentSuccessMessage, result)
}

// FindByPatientID lists the ROM assessments of the patient in the path.
func (ctrl *ROMAssessmentController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	ctrl.findAll(w, r, "ROMAssessmentController.FindByPatientID", chi.URLParam(r, constvars.URLParamPatientID))
}

// FindAll lists every ROM assessment of the clinician, optionally
// narrowed by the patient_id, status and type query parameters.
func (ctrl *ROMAssessmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctrl.findAll(w, r, "ROMAssessmentController.FindAll", r.URL.Query().Get(constvars.URLQueryParamPatientID))
}

func (ctrl *ROMAssessmentController) findAll(w http.ResponseWriter, r *http.Request, method, patientID string) {
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := &requests.AssessmentFilter{
		PatientID: patientID,
		Status:    query.Get(constvars.URLQueryParamStatus),
		Type:      query.Get(constvars.URLQueryParamType),
		UID:       uid,
	}
	if err := utils.ValidateStruct(filter); err != nil {
		ctrl.Log.Error(method+" error validating query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ROMAssessmentUsecase.FindAll(ctx, filter)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetROMAssessmentsSuccessMessage, len(result), result)
}

func (ctrl *ROMAssessmentController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	const method = "ROMAssessmentController.DeleteByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	romAssessmentID := chi.URLParam(r, constvars.URLParamROMAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.ROMAssessmentUsecase.DeleteByID(ctx, uid, romAssessmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, romAssessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteROMAssessmentSuccessMessage, nil)
}

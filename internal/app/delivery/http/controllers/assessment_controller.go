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

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	InternalConfig    *config.InternalConfig
}

var (
	assessmentControllerInstance *AssessmentController
	onceAssessmentController     sync.Once
)

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, internalConfig *config.InternalConfig) *AssessmentController {
	onceAssessmentController.Do(func() {
		instance := &AssessmentController{
			Log:               logger,
			AssessmentUsecase: assessmentUsecase,
			InternalConfig:    internalConfig,
		}
		assessmentControllerInstance = instance
	})
	return assessmentControllerInstance
}

func (ctrl *AssessmentController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "AssessmentController.Create"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveAssessment)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AssessmentUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.AssessmentID),
		zap.String(constvars.LoggingStatusKey, result.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssessmentSuccessMessage, result)
}

func (ctrl *AssessmentController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "AssessmentController.Update"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveAssessment)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.AssessmentID = chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AssessmentUsecase.Update(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.AssessmentID),
		zap.String(constvars.LoggingStatusKey, result.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAssessmentSuccessMessage, result)
}

func (ctrl *AssessmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "AssessmentController.FindByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AssessmentUsecase.FindByID(ctx, uid, assessmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentSuccessMessage, result)
}

// FindByPatientID lists the program evaluations of the patient in the path.
func (ctrl *AssessmentController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	ctrl.findAll(w, r, "AssessmentController.FindByPatientID", chi.URLParam(r, constvars.URLParamPatientID))
}

// FindAll lists every program evaluation of the clinician, optionally
// narrowed by the patient_id, status and type query parameters.
func (ctrl *AssessmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctrl.findAll(w, r, "AssessmentController.FindAll", r.URL.Query().Get(constvars.URLQueryParamPatientID))
}

func (ctrl *AssessmentController) findAll(w http.ResponseWriter, r *http.Request, method, patientID string) {
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

	result, err := ctrl.AssessmentUsecase.FindAll(ctx, filter)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, len(result), result)
}

func (ctrl *AssessmentController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	const method = "AssessmentController.DeleteByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.AssessmentUsecase.DeleteByID(ctx, uid, assessmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssessmentSuccessMessage, nil)
}

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

type GoalController struct {
	Log            *zap.Logger
	GoalUsecase    contracts.GoalUsecase
	InternalConfig *config.InternalConfig
}

var (
	goalControllerInstance *GoalController
	onceGoalController     sync.Once
)

func NewGoalController(logger *zap.Logger, goalUsecase contracts.GoalUsecase, internalConfig *config.InternalConfig) *GoalController {
	onceGoalController.Do(func() {
		instance := &GoalController{
			Log:            logger,
			GoalUsecase:    goalUsecase,
			InternalConfig: internalConfig,
		}
		goalControllerInstance = instance
	})
	return goalControllerInstance
}

func (ctrl *GoalController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "GoalController.Create"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveGoal)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.GoalUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, result.GoalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateGoalSuccessMessage, result)
}

func (ctrl *GoalController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "GoalController.Update"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.SaveGoal)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	request.UID = uid
	request.GoalID = chi.URLParam(r, constvars.URLParamGoalID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.GoalUsecase.Update(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, result.GoalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateGoalSuccessMessage, result)
}

func (ctrl *GoalController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "GoalController.FindByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	goalID := chi.URLParam(r, constvars.URLParamGoalID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.GoalUsecase.FindByID(ctx, uid, goalID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetGoalSuccessMessage, result)
}

func (ctrl *GoalController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	const method = "GoalController.FindByPatientID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.GoalUsecase.FindByPatientID(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetGoalsSuccessMessage, len(result), result)
}

func (ctrl *GoalController) CountByStatus(w http.ResponseWriter, r *http.Request) {
	const method = "GoalController.CountByStatus"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.GoalUsecase.CountByStatus(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetGoalCountsSuccessMessage, result)
}

func (ctrl *GoalController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	const method = "GoalController.DeleteByID"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	goalID := chi.URLParam(r, constvars.URLParamGoalID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.GoalUsecase.DeleteByID(ctx, uid, goalID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGoalIDKey, goalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteGoalSuccessMessage, nil)
}

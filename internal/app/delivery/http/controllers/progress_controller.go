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

type ProgressController struct {
	Log             *zap.Logger
	ProgressUsecase contracts.ProgressUsecase
	OverviewUsecase contracts.OverviewUsecase
	InternalConfig  *config.InternalConfig
}

var (
	progressControllerInstance *ProgressController
	onceProgressController     sync.Once
)

func NewProgressController(
	logger *zap.Logger,
	progressUsecase contracts.ProgressUsecase,
	overviewUsecase contracts.OverviewUsecase,
	internalConfig *config.InternalConfig,
) *ProgressController {
	onceProgressController.Do(func() {
		instance := &ProgressController{
			Log:             logger,
			ProgressUsecase: progressUsecase,
			OverviewUsecase: overviewUsecase,
			InternalConfig:  internalConfig,
		}
		progressControllerInstance = instance
	})
	return progressControllerInstance
}

func (ctrl *ProgressController) GetProgramProgress(w http.ResponseWriter, r *http.Request) {
	const method = "ProgressController.GetProgramProgress"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ProgressUsecase.GetProgramProgress(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingResponseCountKey, len(result.Timeline)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProgramProgressSuccessMessage, result)
}

func (ctrl *ProgressController) GetROMProgress(w http.ResponseWriter, r *http.Request) {
	const method = "ProgressController.GetROMProgress"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ProgressUsecase.GetROMProgress(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetROMProgressSuccessMessage, result)
}

func (ctrl *ProgressController) ExportReport(w http.ResponseWriter, r *http.Request) {
	const method = "ProgressController.ExportReport"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.ProgressUsecase.ExportReport(ctx, uid, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, result.ObjectName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProgressReportSuccessMessage, result)
}

func (ctrl *ProgressController) GetOverview(w http.ResponseWriter, r *http.Request) {
	const method = "ProgressController.GetOverview"
	requestID, uid, ok := requestIdentity(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	filter := &requests.OverviewFilter{
		PatientID: r.URL.Query().Get(constvars.URLQueryParamPatientID),
		UID:       uid,
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.OverviewUsecase.GetOverview(ctx, filter)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, filter.PatientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOverviewSuccessMessage, result)
}

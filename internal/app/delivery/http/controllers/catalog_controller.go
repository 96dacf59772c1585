package controllers

import (
	"context"
	"net/http"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
	InternalConfig *config.InternalConfig
}

var (
	catalogControllerInstance *CatalogController
	onceCatalogController     sync.Once
)

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase, internalConfig *config.InternalConfig) *CatalogController {
	onceCatalogController.Do(func() {
		instance := &CatalogController{
			Log:            logger,
			CatalogUsecase: catalogUsecase,
			InternalConfig: internalConfig,
		}
		catalogControllerInstance = instance
	})
	return catalogControllerInstance
}

func (ctrl *CatalogController) GetProgramEvaluationCatalog(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CatalogController.GetProgramEvaluationCatalog requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetProgramEvaluationCatalog(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CatalogController.GetProgramEvaluationCatalog", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogSuccessMessage, result)
}

func (ctrl *CatalogController) GetROMCatalog(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CatalogController.GetROMCatalog requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetROMCatalog(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CatalogController.GetROMCatalog", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogSuccessMessage, result)
}

func (ctrl *CatalogController) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CatalogController.Refresh requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CatalogController.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.CatalogUsecase.Refresh(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CatalogController.Refresh", requestID, err)
		return
	}

	ctrl.Log.Info("CatalogController.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshCatalogCacheSuccessMessage, nil)
}

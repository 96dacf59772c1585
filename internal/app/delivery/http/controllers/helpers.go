package controllers

import (
	"context"
	"errors"
	"net/http"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestIdentity returns the request id and the authenticated uid. On a
// missing value the error response has already been written.
func requestIdentity(log *zap.Logger, w http.ResponseWriter, r *http.Request, method string) (string, string, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		log.Error(method+" requestID not found in context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}

	uid := utils.GetUID(r.Context())
	if uid == "" {
		log.Error(method+" uid not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingUID(nil))
		return "", "", false
	}

	log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUIDKey, uid),
	)
	return requestID, uid, true
}

// decodeAndValidate parses the JSON body into request and runs struct
// validation on it.
func decodeAndValidate(log *zap.Logger, w http.ResponseWriter, r *http.Request, method, requestID string, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		log.Error(method+" error parsing request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}

	if err := utils.ValidateStruct(request); err != nil {
		log.Error(method+" error validating request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, method, requestID string, err error) {
	log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

package utils

import (
	"context"
	"ot-tracking-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// GetUID returns the authenticated clinician id, empty when unauthenticated.
func GetUID(ctx context.Context) string {
	uid, _ := ctx.Value(constvars.CONTEXT_UID_KEY).(string)
	return uid
}

// ExtractBearerToken strips the Bearer prefix; ok is false when the header
// carries no bearer token.
func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	return token, token != ""
}

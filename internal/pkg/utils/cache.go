package utils

import (
	"fmt"
	"ot-tracking-service/internal/pkg/constvars"
)

func OverviewCacheKey(userID, patientID string) string {
	if patientID == "" {
		patientID = constvars.OverviewScopeAll
	}
	return fmt.Sprintf(constvars.RedisKeyOverviewFormat, userID, patientID)
}

// OverviewCacheKeys lists the cached overviews a write to patientID makes
// stale: the clinician-wide one and the patient one.
func OverviewCacheKeys(userID, patientID string) []string {
	keys := []string{OverviewCacheKey(userID, "")}
	if patientID != "" {
		keys = append(keys, OverviewCacheKey(userID, patientID))
	}
	return keys
}

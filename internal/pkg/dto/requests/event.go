package requests

import "time"

// AssessmentCompletedEvent is published when an assessment is saved complete.
type AssessmentCompletedEvent struct {
	Event        string                 `json:"event"`
	Kind         string                 `json:"kind"`
	AssessmentID string                 `json:"assessment_id"`
	PatientID    string                 `json:"patient_id"`
	UserID       string                 `json:"user_id"`
	Type         string                 `json:"type"`
	CompletedAt  time.Time              `json:"completed_at"`
	Summary      map[string]interface{} `json:"summary"`
}

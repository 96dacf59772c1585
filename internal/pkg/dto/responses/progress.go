package responses

import (
	"ot-tracking-service/internal/pkg/scoring"
	"time"
)

type Overview struct {
	PatientID            string           `json:"patient_id,omitempty"`
	TotalPatients        int64            `json:"total_patients"`
	AssessmentsThisMonth int64            `json:"assessments_this_month"`
	ActiveGoals          int64            `json:"active_goals"`
	SessionNotesCount    int64            `json:"session_notes_count"`
	GoalStatusCounts     GoalStatusCounts `json:"goal_status_counts"`
	GeneratedAt          time.Time        `json:"generated_at"`
}

// ProgressReport is the document exported to object storage.
type ProgressReport struct {
	Patient     Patient                 `json:"patient"`
	Program     scoring.ProgramProgress `json:"program"`
	ROM         scoring.ROMProgress     `json:"rom"`
	GeneratedAt time.Time               `json:"generated_at"`
}

type ProgressReportExport struct {
	ObjectName  string    `json:"object_name"`
	URL         string    `json:"url"`
	ExpiresAt   time.Time `json:"expires_at"`
	GeneratedAt time.Time `json:"generated_at"`
}

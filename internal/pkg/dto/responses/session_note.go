package responses

import "time"

type SessionNote struct {
	SessionNoteID        string    `json:"session_note_id"`
	PatientID            string    `json:"patient_id"`
	SessionDate          string    `json:"session_date"`
	Duration             int       `json:"duration"`
	Focus                string    `json:"focus,omitempty"`
	Activities           string    `json:"activities,omitempty"`
	Observations         string    `json:"observations,omitempty"`
	Progress             string    `json:"progress,omitempty"`
	NextSteps            string    `json:"next_steps,omitempty"`
	AttendanceStatus     string    `json:"attendance_status"`
	AttendanceStatusName string    `json:"attendance_status_name"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

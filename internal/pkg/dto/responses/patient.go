package responses

import "time"

type Patient struct {
	PatientID   string    `json:"patient_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth"`
	Age         int       `json:"age"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientSummary struct {
	PatientID              string `json:"patient_id"`
	ProgramAssessmentCount int64  `json:"program_assessment_count"`
	ROMAssessmentCount     int64  `json:"rom_assessment_count"`
	ActiveGoalCount        int64  `json:"active_goal_count"`
	SessionNoteCount       int64  `json:"session_note_count"`
}

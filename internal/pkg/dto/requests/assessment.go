package requests

import "time"

// SaveAssessment carries a program evaluation form. Ratings are left raw so
// numeric strings from form inputs are accepted.
type SaveAssessment struct {
	Type         string                 `json:"type" validate:"required,assessment_type"`
	Status       string                 `json:"status" validate:"required,assessment_status"`
	Responses    map[string]interface{} `json:"responses"`
	Notes        string                 `json:"notes" validate:"max=5000"`
	PatientID    string                 `json:"-"`
	AssessmentID string                 `json:"-"`
	UID          string                 `json:"-"`
}

type SaveROMAssessment struct {
	Type            string                 `json:"type" validate:"required,assessment_type"`
	Status          string                 `json:"status" validate:"required,assessment_status"`
	SelectedRegions []string               `json:"selected_regions" validate:"dive,body_region"`
	Measurements    map[string]interface{} `json:"measurements"`
	Notes           string                 `json:"notes" validate:"max=5000"`
	PatientID       string                 `json:"-"`
	ROMAssessmentID string                 `json:"-"`
	UID             string                 `json:"-"`
}

type AssessmentFilter struct {
	PatientID    string
	Status       string `validate:"omitempty,assessment_status"`
	Type         string `validate:"omitempty,assessment_type"`
	CreatedSince *time.Time
	UID          string
}

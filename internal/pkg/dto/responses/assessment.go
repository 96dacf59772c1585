package responses

import (
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/scoring"
	"time"
)

type Assessment struct {
	AssessmentID   string                 `json:"assessment_id"`
	PatientID      string                 `json:"patient_id"`
	Type           string                 `json:"type"`
	Status         string                 `json:"status"`
	Responses      map[string]int         `json:"responses"`
	DomainAverages scoring.DomainAverages `json:"domain_averages"`
	TotalScore     int                    `json:"total_score"`
	MaxTotalScore  int                    `json:"max_total_score"`
	Notes          string                 `json:"notes,omitempty"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type ROMAssessment struct {
	ROMAssessmentID   string                      `json:"rom_assessment_id"`
	PatientID         string                      `json:"patient_id"`
	Type              string                      `json:"type"`
	Status            string                      `json:"status"`
	SelectedRegions   []catalog.Region            `json:"selected_regions"`
	Measurements      map[string]float64          `json:"measurements"`
	Notes             string                      `json:"notes,omitempty"`
	OverallPercentage int                         `json:"overall_percentage"`
	OverallStatus     scoring.ROMStatusBucket     `json:"overall_status"`
	Results           []scoring.MeasurementResult `json:"results"`
	RegionBreakdown   []scoring.RegionScore       `json:"region_breakdown"`
	CompletedAt       *time.Time                  `json:"completed_at,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

package models

import (
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type ROMAssessment struct {
	ID              string             `bson:"_id,omitempty"`
	PatientID       string             `bson:"patientId"`
	UserID          string             `bson:"userId"`
	Type            string             `bson:"type"`
	Status          string             `bson:"status"`
	SelectedRegions []catalog.Region   `bson:"selectedRegions"`
	Measurements    map[string]float64 `bson:"measurements"`
	Notes           string             `bson:"notes,omitempty"`
	CompletedAt     *time.Time         `bson:"completedAt,omitempty"`
	TimeModel       `bson:",inline"`
}

func (a *ROMAssessment) IsComplete() bool {
	return a.Status == constvars.AssessmentStatusComplete
}

func (a *ROMAssessment) Readings() scoring.ROMReadings {
	return scoring.ROMReadings{
		SelectedRegions: a.SelectedRegions,
		Measurements:    a.Measurements,
	}
}

func (a *ROMAssessment) ConvertToBsonM() bson.M {
	return bson.M{
		"type":            a.Type,
		"status":          a.Status,
		"selectedRegions": a.SelectedRegions,
		"measurements":    a.Measurements,
		"notes":           a.Notes,
		"completedAt":     a.CompletedAt,
		"updatedAt":       a.UpdatedAt,
	}
}

// ConvertIntoResponse scores the stored readings; scores are never persisted.
func (a *ROMAssessment) ConvertIntoResponse() responses.ROMAssessment {
	readings := a.Readings()
	overall := scoring.OverallROMPercentage(readings)

	regions := a.SelectedRegions
	if regions == nil {
		regions = []catalog.Region{}
	}
	measurements := a.Measurements
	if measurements == nil {
		measurements = map[string]float64{}
	}

	return responses.ROMAssessment{
		ROMAssessmentID:   a.ID,
		PatientID:         a.PatientID,
		Type:              a.Type,
		Status:            a.Status,
		SelectedRegions:   regions,
		Measurements:      measurements,
		Notes:             a.Notes,
		OverallPercentage: overall,
		OverallStatus:     scoring.ROMStatus(overall),
		Results:           scoring.MeasurementResults(readings),
		RegionBreakdown:   scoring.RegionBreakdown(readings),
		CompletedAt:       a.CompletedAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (a *ROMAssessment) ToROMRecord() scoring.ROMRecord {
	return scoring.ROMRecord{
		ID:        a.ID,
		Type:      a.Type,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		Readings:  a.Readings(),
	}
}

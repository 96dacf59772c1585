package models

import (
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Assessment is a program evaluation. DomainAverages and TotalScore are
// recomputed from Responses on every save.
type Assessment struct {
	ID             string                 `bson:"_id,omitempty"`
	PatientID      string                 `bson:"patientId"`
	UserID         string                 `bson:"userId"`
	Type           string                 `bson:"type"`
	Status         string                 `bson:"status"`
	Responses      map[string]int         `bson:"responses"`
	DomainAverages scoring.DomainAverages `bson:"domainAverages"`
	TotalScore     int                    `bson:"totalScore"`
	Notes          string                 `bson:"notes,omitempty"`
	CompletedAt    *time.Time             `bson:"completedAt,omitempty"`
	TimeModel      `bson:",inline"`
}

func (a *Assessment) IsComplete() bool {
	return a.Status == constvars.AssessmentStatusComplete
}

func (a *Assessment) ConvertToBsonM() bson.M {
	return bson.M{
		"type":           a.Type,
		"status":         a.Status,
		"responses":      a.Responses,
		"domainAverages": a.DomainAverages,
		"totalScore":     a.TotalScore,
		"notes":          a.Notes,
		"completedAt":    a.CompletedAt,
		"updatedAt":      a.UpdatedAt,
	}
}

func (a *Assessment) ConvertIntoResponse() responses.Assessment {
	responseSet := a.Responses
	if responseSet == nil {
		responseSet = map[string]int{}
	}
	return responses.Assessment{
		AssessmentID:   a.ID,
		PatientID:      a.PatientID,
		Type:           a.Type,
		Status:         a.Status,
		Responses:      responseSet,
		DomainAverages: a.DomainAverages,
		TotalScore:     a.TotalScore,
		MaxTotalScore:  scoring.MaxTotalScore(),
		Notes:          a.Notes,
		CompletedAt:    a.CompletedAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (a *Assessment) ToProgramRecord() scoring.ProgramRecord {
	return scoring.ProgramRecord{
		ID:             a.ID,
		Type:           a.Type,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		DomainAverages: a.DomainAverages,
		TotalScore:     a.TotalScore,
	}
}

// AssessmentQuery turns a list filter into a Mongo query. It is shared by the
// program and ROM assessment collections, which use the same field names.
func AssessmentQuery(filter *requests.AssessmentFilter) bson.M {
	query := bson.M{"userId": filter.UID}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.CreatedSince != nil {
		query["createdAt"] = bson.M{"$gte": filter.CreatedSince}
	}
	return query
}

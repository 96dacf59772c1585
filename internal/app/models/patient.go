package models

import (
	"ot-tracking-service/internal/pkg/dto/responses"
	"ot-tracking-service/internal/pkg/utils"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Patient struct {
	ID          string `bson:"_id,omitempty"`
	UserID      string `bson:"userId"`
	FirstName   string `bson:"firstName"`
	LastName    string `bson:"lastName"`
	DateOfBirth string `bson:"dateOfBirth"`
	Diagnosis   string `bson:"diagnosis,omitempty"`
	Notes       string `bson:"notes,omitempty"`
	TimeModel   `bson:",inline"`
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Patient) ConvertToBsonM() bson.M {
	return bson.M{
		"firstName":   p.FirstName,
		"lastName":    p.LastName,
		"dateOfBirth": p.DateOfBirth,
		"diagnosis":   p.Diagnosis,
		"notes":       p.Notes,
		"updatedAt":   p.UpdatedAt,
	}
}

func (p *Patient) ConvertIntoResponse(now time.Time) responses.Patient {
	return responses.Patient{
		PatientID:   p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		DateOfBirth: p.DateOfBirth,
		Age:         utils.CalculateAge(p.DateOfBirth, now),
		Diagnosis:   p.Diagnosis,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

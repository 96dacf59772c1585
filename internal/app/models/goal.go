package models

import (
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type Goal struct {
	ID                  string `bson:"_id,omitempty"`
	PatientID           string `bson:"patientId"`
	UserID              string `bson:"userId"`
	Title               string `bson:"title"`
	Description         string `bson:"description,omitempty"`
	TargetDate          string `bson:"targetDate,omitempty"`
	Category            string `bson:"category"`
	Status              string `bson:"status"`
	MeasurableObjective string `bson:"measurableObjective,omitempty"`
	Progress            int    `bson:"progress"`
	TimeModel           `bson:",inline"`
}

func (g *Goal) ConvertToBsonM() bson.M {
	return bson.M{
		"title":               g.Title,
		"description":         g.Description,
		"targetDate":          g.TargetDate,
		"category":            g.Category,
		"status":              g.Status,
		"measurableObjective": g.MeasurableObjective,
		"progress":            g.Progress,
		"updatedAt":           g.UpdatedAt,
	}
}

func (g *Goal) ConvertIntoResponse() responses.Goal {
	return responses.Goal{
		GoalID:              g.ID,
		PatientID:           g.PatientID,
		Title:               g.Title,
		Description:         g.Description,
		TargetDate:          g.TargetDate,
		Category:            g.Category,
		CategoryName:        constvars.GoalCategoryNames[g.Category],
		Status:              g.Status,
		StatusName:          constvars.GoalStatusNames[g.Status],
		MeasurableObjective: g.MeasurableObjective,
		Progress:            g.Progress,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

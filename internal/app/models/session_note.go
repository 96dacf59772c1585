package models

import (
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type SessionNote struct {
	ID               string `bson:"_id,omitempty"`
	PatientID        string `bson:"patientId"`
	UserID           string `bson:"userId"`
	SessionDate      string `bson:"sessionDate"`
	Duration         int    `bson:"duration"`
	Focus            string `bson:"focus,omitempty"`
	Activities       string `bson:"activities,omitempty"`
	Observations     string `bson:"observations,omitempty"`
	Progress         string `bson:"progress,omitempty"`
	NextSteps        string `bson:"nextSteps,omitempty"`
	AttendanceStatus string `bson:"attendanceStatus"`
	TimeModel        `bson:",inline"`
}

func (s *SessionNote) ConvertToBsonM() bson.M {
	return bson.M{
		"sessionDate":      s.SessionDate,
		"duration":         s.Duration,
		"focus":            s.Focus,
		"activities":       s.Activities,
		"observations":     s.Observations,
		"progress":         s.Progress,
		"nextSteps":        s.NextSteps,
		"attendanceStatus": s.AttendanceStatus,
		"updatedAt":        s.UpdatedAt,
	}
}

func (s *SessionNote) ConvertIntoResponse() responses.SessionNote {
	return responses.SessionNote{
		SessionNoteID:        s.ID,
		PatientID:            s.PatientID,
		SessionDate:          s.SessionDate,
		Duration:             s.Duration,
		Focus:                s.Focus,
		Activities:           s.Activities,
		Observations:         s.Observations,
		Progress:             s.Progress,
		NextSteps:            s.NextSteps,
		AttendanceStatus:     s.AttendanceStatus,
		AttendanceStatusName: constvars.AttendanceStatusNames[s.AttendanceStatus],
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

package responses

import "time"

type Goal struct {
	GoalID              string    `json:"goal_id"`
	PatientID           string    `json:"patient_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	TargetDate          string    `json:"target_date,omitempty"`
	Category            string    `json:"category"`
	CategoryName        string    `json:"category_name"`
	Status              string    `json:"status"`
	StatusName          string    `json:"status_name"`
	MeasurableObjective string    `json:"measurable_objective,omitempty"`
	Progress            int       `json:"progress"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type GoalStatusCounts map[string]int64

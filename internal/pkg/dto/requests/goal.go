package requests

type SaveGoal struct {
	Title               string `json:"title" validate:"required,max=200"`
	Description         string `json:"description" validate:"max=5000"`
	TargetDate          string `json:"target_date" validate:"omitempty,date_only"`
	Category            string `json:"category" validate:"omitempty,goal_category"`
	Status              string `json:"status" validate:"omitempty,goal_status"`
	MeasurableObjective string `json:"measurable_objective" validate:"max=2000"`
	Progress            *int   `json:"progress" validate:"omitempty,gte=0,lte=100"`
	PatientID           string `json:"-"`
	GoalID              string `json:"-"`
	UID                 string `json:"-"`
}

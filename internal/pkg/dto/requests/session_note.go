package requests

type SaveSessionNote struct {
	SessionDate      string `json:"session_date" validate:"required,date_only"`
	Duration         *int   `json:"duration" validate:"omitempty,gte=0,lte=1440"`
	Focus            string `json:"focus" validate:"max=500"`
	Activities       string `json:"activities" validate:"max=5000"`
	Observations     string `json:"observations" validate:"max=5000"`
	Progress         string `json:"progress" validate:"max=5000"`
	NextSteps        string `json:"next_steps" validate:"max=5000"`
	AttendanceStatus string `json:"attendance_status" validate:"omitempty,attendance_status"`
	PatientID        string `json:"-"`
	SessionNoteID    string `json:"-"`
	UID              string `json:"-"`
}

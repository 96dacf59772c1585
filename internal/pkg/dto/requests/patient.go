package requests

type CreatePatient struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"required,date_only"`
	Diagnosis   string `json:"diagnosis" validate:"max=500"`
	Notes       string `json:"notes" validate:"max=5000"`
	UID         string `json:"-"`
}

type UpdatePatient struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"required,date_only"`
	Diagnosis   string `json:"diagnosis" validate:"max=500"`
	Notes       string `json:"notes" validate:"max=5000"`
	PatientID   string `json:"-"`
	UID         string `json:"-"`
}

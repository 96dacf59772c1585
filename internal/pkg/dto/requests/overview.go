package requests

type OverviewFilter struct {
	PatientID string
	UID       string
}

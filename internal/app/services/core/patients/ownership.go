package patients

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/models"
	"ot-tracking-service/internal/pkg/exceptions"
)

// FindOwnedPatient loads a patient of the clinician. A patient of another
// clinician is reported as not found.
func FindOwnedPatient(ctx context.Context, repo contracts.PatientRepository, userID, patientID string) (*models.Patient, error) {
	patient, err := repo.FindByID(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotOwned(nil, patientID)
	}
	return patient, nil
}

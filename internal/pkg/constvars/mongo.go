package constvars

const (
	MongoCollectionPatients       = "patients"
	MongoCollectionAssessments    = "assessments"
	MongoCollectionROMAssessments = "romAssessments"
	MongoCollectionGoals          = "goals"
	MongoCollectionSessionNotes   = "sessionNotes"
)

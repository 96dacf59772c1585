package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Patient messages
	CreatePatientSuccessMessage     = "patient created successfully"
	UpdatePatientSuccessMessage     = "patient updated successfully"
	DeletePatientSuccessMessage     = "patient deleted successfully"
	GetPatientSuccessMessage        = "get patient successfully"
	GetPatientsSuccessMessage       = "get patients successfully"
	GetPatientSummarySuccessMessage = "get patient summary successfully"

	// Program evaluation messages
	CreateAssessmentSuccessMessage = "assessment created successfully"
	UpdateAssessmentSuccessMessage = "assessment updated successfully"
	DeleteAssessmentSuccessMessage = "assessment deleted successfully"
	GetAssessmentSuccessMessage    = "get assessment successfully"
	GetAssessmentsSuccessMessage   = "get assessments successfully"

	// ROM messages
	CreateROMAssessmentSuccessMessage = "rom assessment created successfully"
	UpdateROMAssessmentSuccessMessage = "rom assessment updated successfully"
	DeleteROMAssessmentSuccessMessage = "rom assessment deleted successfully"
	GetROMAssessmentSuccessMessage    = "get rom assessment successfully"
	GetROMAssessmentsSuccessMessage   = "get rom assessments successfully"

	// Goal messages
	CreateGoalSuccessMessage    = "goal created successfully"
	UpdateGoalSuccessMessage    = "goal updated successfully"
	DeleteGoalSuccessMessage    = "goal deleted successfully"
	GetGoalSuccessMessage       = "get goal successfully"
	GetGoalsSuccessMessage      = "get goals successfully"
	GetGoalCountsSuccessMessage = "get goal counts successfully"

	// Session note messages
	CreateSessionNoteSuccessMessage = "session note created successfully"
	UpdateSessionNoteSuccessMessage = "session note updated successfully"
	DeleteSessionNoteSuccessMessage = "session note deleted successfully"
	GetSessionNoteSuccessMessage    = "get session note successfully"
	GetSessionNotesSuccessMessage   = "get session notes successfully"

	// Progress messages
	GetProgramProgressSuccessMessage   = "get program evaluation progress successfully"
	GetROMProgressSuccessMessage       = "get rom progress successfully"
	GetOverviewSuccessMessage          = "get overview successfully"
	CreateProgressReportSuccessMessage = "progress report exported successfully"
	GetCatalogSuccessMessage           = "get catalog successfully"
	RefreshCatalogCacheSuccessMessage  = "catalog cache refreshed successfully"
)

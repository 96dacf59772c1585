package constvars

const (
	URLParamPatientID       = "patient_id"
	URLParamAssessmentID    = "assessment_id"
	URLParamROMAssessmentID = "rom_assessment_id"
	URLParamGoalID          = "goal_id"
	URLParamSessionNoteID   = "session_note_id"
)

const (
	URLQueryParamPatientID = "patient_id"
	URLQueryParamStatus    = "status"
	URLQueryParamType      = "type"
)

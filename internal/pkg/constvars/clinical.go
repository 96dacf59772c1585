package constvars

const (
	AssessmentTypePre  = "pre"
	AssessmentTypePost = "post"
)

const (
	AssessmentStatusDraft    = "in_progress"
	AssessmentStatusComplete = "complete"
)

const (
	AssessmentKindProgram = "program"
	AssessmentKindROM     = "rom"
)

const (
	GoalCategoryFunctional = "functional"
	GoalCategoryMotor      = "motor"
	GoalCategoryCognitive  = "cognitive"
	GoalCategorySocial     = "social"
	GoalCategorySelfCare   = "selfCare"
	GoalCategoryOther      = "other"
)

const (
	GoalStatusActive       = "active"
	GoalStatusAchieved     = "achieved"
	GoalStatusModified     = "modified"
	GoalStatusDiscontinued = "discontinued"
)

const (
	AttendanceStatusCompleted   = "completed"
	AttendanceStatusCancelled   = "cancelled"
	AttendanceStatusNoShow      = "noShow"
	AttendanceStatusRescheduled = "rescheduled"
)

var GoalCategoryNames = map[string]string{
	GoalCategoryFunctional: "Functional Skills",
	GoalCategoryMotor:      "Motor Skills",
	GoalCategoryCognitive:  "Cognitive Skills",
	GoalCategorySocial:     "Social/Behavioral",
	GoalCategorySelfCare:   "Self-Care",
	GoalCategoryOther:      "Other",
}

var GoalStatusNames = map[string]string{
	GoalStatusActive:       "Active",
	GoalStatusAchieved:     "Achieved",
	GoalStatusModified:     "Modified",
	GoalStatusDiscontinued: "Discontinued",
}

var AttendanceStatusNames = map[string]string{
	AttendanceStatusCompleted:   "Completed",
	AttendanceStatusCancelled:   "Cancelled",
	AttendanceStatusNoShow:      "No Show",
	AttendanceStatusRescheduled: "Rescheduled",
}

const (
	EventAssessmentCompleted = "assessment.completed"
)

package scoring

import (
	"fmt"
	"ot-tracking-service/internal/pkg/constvars"
)

// AssessmentStatus is the save mode of an assessment. Scorers never look at
// it; only save paths branch on it.
type AssessmentStatus int

const (
	StatusDraft AssessmentStatus = iota
	StatusComplete
)

func (s AssessmentStatus) String() string {
	if s == StatusComplete {
		return constvars.AssessmentStatusComplete
	}
	return constvars.AssessmentStatusDraft
}

func (s AssessmentStatus) IsComplete() bool {
	return s == StatusComplete
}

func ParseAssessmentStatus(value string) (AssessmentStatus, error) {
	switch value {
	case constvars.AssessmentStatusDraft:
		return StatusDraft, nil
	case constvars.AssessmentStatusComplete:
		return StatusComplete, nil
	}
	return StatusDraft, fmt.Errorf("unknown assessment status %q", value)
}

package assessments

import (
	"fmt"
	"math"
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/scoring"
	"ot-tracking-service/internal/pkg/utils"
	"sort"
)

// parseResponses normalizes raw form ratings. Blank ratings are treated as
// unanswered and dropped.
func parseResponses(raw map[string]interface{}) (scoring.Responses, error) {
	// sorted so the reported error is stable across requests
	questionIDs := make([]string, 0, len(raw))
	for questionID := range raw {
		questionIDs = append(questionIDs, questionID)
	}
	sort.Strings(questionIDs)

	parsed := make(scoring.Responses, len(raw))
	for _, questionID := range questionIDs {
		if _, ok := catalog.QuestionByID(questionID); !ok {
			return nil, exceptions.ErrUnknownQuestion(fmt.Errorf("unknown question %q", questionID), questionID)
		}

		value, present, err := utils.ParseNumericValue(raw[questionID])
		if err != nil {
			return nil, exceptions.ErrNonNumericValue(err, questionID)
		}
		if !present {
			continue
		}

		if value != math.Trunc(value) || !catalog.IsValidRating(int(value)) {
			return nil, exceptions.ErrRatingOutOfRange(
				fmt.Errorf("rating %v for %s", value, questionID),
				questionID, catalog.MinRating, catalog.MaxRating,
			)
		}
		parsed[questionID] = int(value)
	}
	return parsed, nil
}

// checkCompletion rejects a complete status while any question is unanswered.
func checkCompletion(status string, responses scoring.Responses) error {
	parsedStatus, err := scoring.ParseAssessmentStatus(status)
	if err != nil || !parsedStatus.IsComplete() {
		return nil
	}
	missing := scoring.MissingQuestions(responses)
	if len(missing) > 0 {
		return exceptions.ErrAssessmentIncomplete(
			fmt.Errorf("%d questions unanswered", len(missing)), missing[0],
		)
	}
	return nil
}

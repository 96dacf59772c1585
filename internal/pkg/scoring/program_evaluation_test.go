package scoring

import (
	"fmt"
	"ot-tracking-service/internal/pkg/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResponses(rating int) Responses {
	responses := Responses{}
	for _, question := range catalog.Questions() {
		responses[question.ID] = rating
	}
	return responses
}

func TestDomainAverage(t *testing.T) {
	t.Run("No Answers Is Nil", func(t *testing.T) {
		assert.Nil(t, DomainAverage(Responses{}, catalog.DomainPlay), "empty domain must be nil, not 0")
		assert.Nil(t, DomainAverage(nil, catalog.DomainGrossMotor))
		assert.Nil(t, DomainAverage(Responses{"q1": 5}, catalog.DomainSelfCare), "answers outside the domain do not count")
	})

	t.Run("Unknown Domain Is Nil", func(t *testing.T) {
		assert.Nil(t, DomainAverage(fullResponses(3), catalog.Domain("leisure")))
	})

	t.Run("Mean Of Answered Only", func(t *testing.T) {
		average := DomainAverage(Responses{"q1": 4, "q2": 5}, catalog.DomainPlay)
		require.NotNil(t, average)
		assert.Equal(t, 4.5, *average)
	})

	t.Run("Rounded To Two Decimals", func(t *testing.T) {
		average := DomainAverage(Responses{"q15": 1, "q16": 2, "q17": 2}, catalog.DomainGrossMotor)
		require.NotNil(t, average)
		assert.Equal(t, 1.67, *average)
	})

	t.Run("Ignores Unknown Question Keys", func(t *testing.T) {
		average := DomainAverage(Responses{"q6": 2, "q99": 5}, catalog.DomainSelfCare)
		require.NotNil(t, average)
		assert.Equal(t, 2.0, *average)
	})
}

func TestUniformResponses(t *testing.T) {
	for rating := catalog.MinRating; rating <= catalog.MaxRating; rating++ {
		t.Run(fmt.Sprintf("All %d", rating), func(t *testing.T) {
			responses := fullResponses(rating)
			averages := AllDomainAverages(responses)
			for _, domain := range catalog.Domains() {
				value := averages.Get(domain)
				require.NotNil(t, value, "domain %s should be scored", domain)
				assert.Equal(t, float64(rating), *value)
			}
			assert.Equal(t, 17*rating, TotalScore(responses))
			assert.True(t, IsComplete(responses))
		})
	}
}

func TestAllDomainAverages(t *testing.T) {
	t.Run("Domains Independent", func(t *testing.T) {
		averages := AllDomainAverages(Responses{"q1": 3, "q11": 5, "q12": 4})
		require.NotNil(t, averages.Play)
		require.NotNil(t, averages.FineMotor)
		assert.Nil(t, averages.SelfCare)
		assert.Nil(t, averages.GrossMotor)
		assert.Equal(t, 3.0, *averages.Play)
		assert.Equal(t, 4.5, *averages.FineMotor)
		assert.Equal(t, 0.0, averages.ValueOrZero(catalog.DomainSelfCare))
	})

	t.Run("Deterministic", func(t *testing.T) {
		responses := Responses{"q1": 2, "q7": 3, "q13": 1, "q17": 5}
		assert.Equal(t, AllDomainAverages(responses), AllDomainAverages(responses))
		assert.Equal(t, TotalScore(responses), TotalScore(responses))
	})
}

func TestTotalScoreAndCompleteness(t *testing.T) {
	t.Run("Partial Total", func(t *testing.T) {
		assert.Equal(t, 9, TotalScore(Responses{"q1": 4, "q17": 5, "q100": 3}))
	})

	t.Run("Max Total Score", func(t *testing.T) {
		assert.Equal(t, 85, MaxTotalScore())
		assert.Equal(t, MaxTotalScore(), TotalScore(fullResponses(catalog.MaxRating)))
	})

	t.Run("Missing Questions In Order", func(t *testing.T) {
		responses := fullResponses(3)
		delete(responses, "q4")
		delete(responses, "q16")
		assert.Equal(t, []string{"q4", "q16"}, MissingQuestions(responses))
		assert.False(t, IsComplete(responses))
	})
}

func TestAssessmentStatus(t *testing.T) {
	status, err := ParseAssessmentStatus("complete")
	require.NoError(t, err)
	assert.True(t, status.IsComplete())
	assert.Equal(t, "complete", status.String())

	status, err = ParseAssessmentStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, status)

	_, err = ParseAssessmentStatus("done")
	assert.Error(t, err)
}

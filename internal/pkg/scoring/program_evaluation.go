package scoring

import (
	"ot-tracking-service/internal/pkg/catalog"
)

// Responses maps a question id to its rating. An absent key is an
// unanswered question.
type Responses map[string]int

// DomainAverages holds one average per domain; nil means nothing in the
// domain was answered.
type DomainAverages struct {
	Play       *float64 `json:"play" bson:"play"`
	SelfCare   *float64 `json:"self_care" bson:"self_care"`
	FineMotor  *float64 `json:"fine_motor" bson:"fine_motor"`
	GrossMotor *float64 `json:"gross_motor" bson:"gross_motor"`
}

func (d DomainAverages) Get(domain catalog.Domain) *float64 {
	switch domain {
	case catalog.DomainPlay:
		return d.Play
	case catalog.DomainSelfCare:
		return d.SelfCare
	case catalog.DomainFineMotor:
		return d.FineMotor
	case catalog.DomainGrossMotor:
		return d.GrossMotor
	}
	return nil
}

// ValueOrZero reads a domain average treating a missing one as 0.
func (d DomainAverages) ValueOrZero(domain catalog.Domain) float64 {
	if v := d.Get(domain); v != nil {
		return *v
	}
	return 0
}

func (d *DomainAverages) set(domain catalog.Domain, value *float64) {
	switch domain {
	case catalog.DomainPlay:
		d.Play = value
	case catalog.DomainSelfCare:
		d.SelfCare = value
	case catalog.DomainFineMotor:
		d.FineMotor = value
	case catalog.DomainGrossMotor:
		d.GrossMotor = value
	}
}

// DomainAverage is the mean of the answered ratings of a domain, rounded to
// two decimals. Unknown domains and domains with no answers give nil.
func DomainAverage(responses Responses, domain catalog.Domain) *float64 {
	sum, count := 0, 0
	for _, question := range catalog.QuestionsByDomain(domain) {
		rating, ok := responses[question.ID]
		if !ok {
			continue
		}
		sum += rating
		count++
	}
	if count == 0 {
		return nil
	}
	average := round2(float64(sum) / float64(count))
	return &average
}

func AllDomainAverages(responses Responses) DomainAverages {
	var averages DomainAverages
	for _, domain := range catalog.Domains() {
		averages.set(domain, DomainAverage(responses, domain))
	}
	return averages
}

// TotalScore sums every answered catalog question.
func TotalScore(responses Responses) int {
	total := 0
	for _, question := range catalog.Questions() {
		total += responses[question.ID]
	}
	return total
}

func MaxTotalScore() int {
	return catalog.MaxTotalScore()
}

// MissingQuestions lists unanswered question ids in catalog order.
func MissingQuestions(responses Responses) []string {
	var missing []string
	for _, question := range catalog.Questions() {
		if _, ok := responses[question.ID]; !ok {
			missing = append(missing, question.ID)
		}
	}
	return missing
}

func IsComplete(responses Responses) bool {
	return len(MissingQuestions(responses)) == 0
}

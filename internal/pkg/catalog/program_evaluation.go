package catalog

// Domain identifies one of the four program evaluation domains.
type Domain string

const (
	DomainPlay       Domain = "play"
	DomainSelfCare   Domain = "self_care"
	DomainFineMotor  Domain = "fine_motor"
	DomainGrossMotor Domain = "gross_motor"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Question struct {
	ID     string `json:"id" bson:"id"`
	Domain Domain `json:"domain" bson:"domain"`
	Number int    `json:"number" bson:"number"`
	Text   string `json:"question" bson:"question"`
}

type RatingLevel struct {
	Value int    `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

var domains = []Domain{
	DomainPlay,
	DomainSelfCare,
	DomainFineMotor,
	DomainGrossMotor,
}

var domainNames = map[Domain]string{
	DomainPlay:       "Play",
	DomainSelfCare:   "Self-Care",
	DomainFineMotor:  "Fine Motor",
	DomainGrossMotor: "Gross Motor",
}

var questions = []Question{
	{ID: "q1", Domain: DomainPlay, Number: 1, Text: "Child engages in age-appropriate play activities"},
	{ID: "q2", Domain: DomainPlay, Number: 2, Text: "Child shows creativity and imagination during play"},
	{ID: "q3", Domain: DomainPlay, Number: 3, Text: "Child participates in cooperative play with peers"},
	{ID: "q4", Domain: DomainPlay, Number: 4, Text: "Child demonstrates sustained attention during play"},
	{ID: "q5", Domain: DomainPlay, Number: 5, Text: "Child shows interest in variety of play materials"},

	{ID: "q6", Domain: DomainSelfCare, Number: 6, Text: "Child feeds self independently"},
	{ID: "q7", Domain: DomainSelfCare, Number: 7, Text: "Child dresses self with minimal assistance"},
	{ID: "q8", Domain: DomainSelfCare, Number: 8, Text: "Child maintains personal hygiene routines"},
	{ID: "q9", Domain: DomainSelfCare, Number: 9, Text: "Child uses utensils appropriately"},
	{ID: "q10", Domain: DomainSelfCare, Number: 10, Text: "Child manages toileting independently"},

	{ID: "q11", Domain: DomainFineMotor, Number: 11, Text: "Child demonstrates appropriate pencil grasp"},
	{ID: "q12", Domain: DomainFineMotor, Number: 12, Text: "Child manipulates small objects with precision"},
	{ID: "q13", Domain: DomainFineMotor, Number: 13, Text: "Child cuts with scissors along lines"},
	{ID: "q14", Domain: DomainFineMotor, Number: 14, Text: "Child performs age-appropriate handwriting tasks"},

	{ID: "q15", Domain: DomainGrossMotor, Number: 15, Text: "Child demonstrates balance and coordination"},
	{ID: "q16", Domain: DomainGrossMotor, Number: 16, Text: "Child participates in age-appropriate physical activities"},
	{ID: "q17", Domain: DomainGrossMotor, Number: 17, Text: "Child demonstrates body awareness and motor planning"},
}

var ratingScale = []RatingLevel{
	{Value: 1, Label: "Cannot do / Not observed"},
	{Value: 2, Label: "Significant assistance"},
	{Value: 3, Label: "Moderate assistance"},
	{Value: 4, Label: "Minimal assistance"},
	{Value: 5, Label: "Independent"},
}

var questionIndex = buildQuestionIndex()

func buildQuestionIndex() map[string]Question {
	index := make(map[string]Question, len(questions))
	for _, question := range questions {
		index[question.ID] = question
	}
	return index
}

// Domains returns the domains in display order.
func Domains() []Domain {
	return append([]Domain(nil), domains...)
}

func DomainName(domain Domain) string {
	return domainNames[domain]
}

func IsValidDomain(domain Domain) bool {
	_, ok := domainNames[domain]
	return ok
}

// Questions returns the full question list in numbering order.
func Questions() []Question {
	return append([]Question(nil), questions...)
}

func QuestionCount() int {
	return len(questions)
}

func QuestionsByDomain(domain Domain) []Question {
	var result []Question
	for _, question := range questions {
		if question.Domain == domain {
			result = append(result, question)
		}
	}
	return result
}

func QuestionByID(questionID string) (Question, bool) {
	question, ok := questionIndex[questionID]
	return question, ok
}

func RatingScale() []RatingLevel {
	return append([]RatingLevel(nil), ratingScale...)
}

func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// MaxTotalScore is the highest attainable total: every question at the top
// of the rating scale.
func MaxTotalScore() int {
	return len(questions) * MaxRating
}

package responses

import "ot-tracking-service/internal/pkg/catalog"

type CatalogDomain struct {
	ID          catalog.Domain `json:"id"`
	Name        string         `json:"name"`
	QuestionIDs []string       `json:"question_ids"`
}

type ProgramEvaluationCatalog struct {
	Questions     []catalog.Question    `json:"questions"`
	Domains       []CatalogDomain       `json:"domains"`
	RatingScale   []catalog.RatingLevel `json:"rating_scale"`
	MaxTotalScore int                   `json:"max_total_score"`
}

type CatalogRegion struct {
	ID           catalog.Region        `json:"id"`
	Name         string                `json:"name"`
	Measurements []catalog.Measurement `json:"measurements"`
}

type ROMCatalog struct {
	Regions []CatalogRegion `json:"regions"`
}

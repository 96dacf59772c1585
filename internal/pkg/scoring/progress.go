package scoring

import (
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/constvars"
	"sort"
	"time"
)

// ProgramRecord is a stored program evaluation as seen by progress views.
type ProgramRecord struct {
	ID             string
	Type           string
	Status         string
	CreatedAt      time.Time
	DomainAverages DomainAverages
	TotalScore     int
}

type ROMRecord struct {
	ID        string
	Type      string
	Status    string
	CreatedAt time.Time
	Readings  ROMReadings
}

type ProgramTimelinePoint struct {
	AssessmentID   string                     `json:"assessment_id"`
	Date           time.Time                  `json:"date"`
	Type           string                     `json:"type"`
	DomainAverages map[catalog.Domain]float64 `json:"domain_averages"`
	TotalScore     int                        `json:"total_score"`
}

type DomainComparison struct {
	Domain      catalog.Domain `json:"domain"`
	Name        string         `json:"name"`
	Pre         float64        `json:"pre"`
	Post        float64        `json:"post"`
	Improvement float64        `json:"improvement"`
}

type ProgramSummary struct {
	TotalAssessments int     `json:"total_assessments"`
	PreCount         int     `json:"pre_count"`
	PostCount        int     `json:"post_count"`
	OverallAverage   float64 `json:"overall_average"`
	MaxTotalScore    int     `json:"max_total_score"`
}

type ProgramProgress struct {
	Timeline   []ProgramTimelinePoint `json:"timeline"`
	Comparison []DomainComparison     `json:"comparison"`
	Summary    ProgramSummary         `json:"summary"`
}

type ROMTimelinePoint struct {
	AssessmentID string    `json:"assessment_id"`
	Date         time.Time `json:"date"`
	Type         string    `json:"type"`
	Percentage   int       `json:"percentage"`
}

type ROMImprovement struct {
	Pre                   int `json:"pre"`
	Post                  int `json:"post"`
	Improvement           int `json:"improvement"`
	ImprovementPercentage int `json:"improvement_percentage"`
}

type ROMSummary struct {
	CompletedAssessments    int `json:"completed_assessments"`
	PreCount                int `json:"pre_count"`
	PostCount               int `json:"post_count"`
	LatestOverallPercentage int `json:"latest_overall_percentage"`
}

type ROMProgress struct {
	Timeline         []ROMTimelinePoint    `json:"timeline"`
	RegionComparison []RegionComparisonRow `json:"region_comparison"`
	Radar            []RegionScore         `json:"radar"`
	Improvement      *ROMImprovement       `json:"improvement,omitempty"`
	Summary          ROMSummary            `json:"summary"`
}

func completedPrograms(records []ProgramRecord) []ProgramRecord {
	result := make([]ProgramRecord, 0, len(records))
	for _, record := range records {
		if record.Status == constvars.AssessmentStatusComplete {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func completedROM(records []ROMRecord) []ROMRecord {
	result := make([]ROMRecord, 0, len(records))
	for _, record := range records {
		if record.Status == constvars.AssessmentStatusComplete {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// ProgramTimeline orders completed program evaluations oldest first, with
// missing domain averages shown as 0.
func ProgramTimeline(records []ProgramRecord) []ProgramTimelinePoint {
	completed := completedPrograms(records)
	timeline := make([]ProgramTimelinePoint, 0, len(completed))
	for _, record := range completed {
		averages := make(map[catalog.Domain]float64, 4)
		for _, domain := range catalog.Domains() {
			averages[domain] = record.DomainAverages.ValueOrZero(domain)
		}
		timeline = append(timeline, ProgramTimelinePoint{
			AssessmentID:   record.ID,
			Date:           record.CreatedAt,
			Type:           record.Type,
			DomainAverages: averages,
			TotalScore:     record.TotalScore,
		})
	}
	return timeline
}

func meanDomain(records []ProgramRecord, domain catalog.Domain) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, record := range records {
		sum += record.DomainAverages.ValueOrZero(domain)
	}
	return sum / float64(len(records))
}

// ProgramComparison averages each domain over all completed pre and all
// completed post evaluations.
func ProgramComparison(records []ProgramRecord) []DomainComparison {
	var pre, post []ProgramRecord
	for _, record := range completedPrograms(records) {
		switch record.Type {
		case constvars.AssessmentTypePre:
			pre = append(pre, record)
		case constvars.AssessmentTypePost:
			post = append(post, record)
		}
	}

	result := make([]DomainComparison, 0, 4)
	for _, domain := range catalog.Domains() {
		preMean := meanDomain(pre, domain)
		postMean := meanDomain(post, domain)
		result = append(result, DomainComparison{
			Domain:      domain,
			Name:        catalog.DomainName(domain),
			Pre:         round2(preMean),
			Post:        round2(postMean),
			Improvement: round2(postMean - preMean),
		})
	}
	return result
}

func SummarizeProgram(records []ProgramRecord) ProgramSummary {
	completed := completedPrograms(records)
	summary := ProgramSummary{
		TotalAssessments: len(completed),
		MaxTotalScore:    MaxTotalScore(),
	}
	if len(completed) == 0 {
		return summary
	}

	domains := catalog.Domains()
	sum := 0.0
	for _, record := range completed {
		switch record.Type {
		case constvars.AssessmentTypePre:
			summary.PreCount++
		case constvars.AssessmentTypePost:
			summary.PostCount++
		}
		recordSum := 0.0
		for _, domain := range domains {
			recordSum += record.DomainAverages.ValueOrZero(domain)
		}
		sum += recordSum / float64(len(domains))
	}
	summary.OverallAverage = round2(sum / float64(len(completed)))
	return summary
}

func BuildProgramProgress(records []ProgramRecord) ProgramProgress {
	return ProgramProgress{
		Timeline:   ProgramTimeline(records),
		Comparison: ProgramComparison(records),
		Summary:    SummarizeProgram(records),
	}
}

func ROMTimeline(records []ROMRecord) []ROMTimelinePoint {
	completed := completedROM(records)
	timeline := make([]ROMTimelinePoint, 0, len(completed))
	for _, record := range completed {
		timeline = append(timeline, ROMTimelinePoint{
			AssessmentID: record.ID,
			Date:         record.CreatedAt,
			Type:         record.Type,
			Percentage:   OverallROMPercentage(record.Readings),
		})
	}
	return timeline
}

// LatestROM returns the most recent completed ROM assessment of a type.
// Ties on createdAt keep the earlier record.
func LatestROM(records []ROMRecord, assessmentType string) (ROMRecord, bool) {
	var latest ROMRecord
	found := false
	for _, record := range completedROM(records) {
		if record.Type != assessmentType {
			continue
		}
		if !found || record.CreatedAt.After(latest.CreatedAt) {
			latest = record
			found = true
		}
	}
	return latest, found
}

func ROMRegionComparison(records []ROMRecord) []RegionComparisonRow {
	pre, okPre := LatestROM(records, constvars.AssessmentTypePre)
	post, okPost := LatestROM(records, constvars.AssessmentTypePost)
	if !okPre || !okPost {
		return []RegionComparisonRow{}
	}
	return RegionComparison(pre.Readings, post.Readings)
}

// ROMRadar breaks down the latest completed ROM assessment of any type.
func ROMRadar(records []ROMRecord) []RegionScore {
	completed := completedROM(records)
	if len(completed) == 0 {
		return []RegionScore{}
	}
	return RegionBreakdown(completed[len(completed)-1].Readings)
}

func ComputeROMImprovement(records []ROMRecord) *ROMImprovement {
	pre, okPre := LatestROM(records, constvars.AssessmentTypePre)
	post, okPost := LatestROM(records, constvars.AssessmentTypePost)
	if !okPre || !okPost {
		return nil
	}

	improvement := &ROMImprovement{
		Pre:  OverallROMPercentage(pre.Readings),
		Post: OverallROMPercentage(post.Readings),
	}
	improvement.Improvement = improvement.Post - improvement.Pre
	if improvement.Pre > 0 {
		improvement.ImprovementPercentage = roundHalfUp(float64(improvement.Improvement) / float64(improvement.Pre) * 100)
	}
	return improvement
}

func SummarizeROM(records []ROMRecord) ROMSummary {
	completed := completedROM(records)
	summary := ROMSummary{CompletedAssessments: len(completed)}
	for _, record := range completed {
		switch record.Type {
		case constvars.AssessmentTypePre:
			summary.PreCount++
		case constvars.AssessmentTypePost:
			summary.PostCount++
		}
	}
	if len(completed) > 0 {
		summary.LatestOverallPercentage = OverallROMPercentage(completed[len(completed)-1].Readings)
	}
	return summary
}

func BuildROMProgress(records []ROMRecord) ROMProgress {
	return ROMProgress{
		Timeline:         ROMTimeline(records),
		RegionComparison: ROMRegionComparison(records),
		Radar:            ROMRadar(records),
		Improvement:      ComputeROMImprovement(records),
		Summary:          SummarizeROM(records),
	}
}

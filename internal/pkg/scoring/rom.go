package scoring

import (
	"math"
	"ot-tracking-service/internal/pkg/catalog"
)

// Measurements maps a reading key (see catalog.KeyFor) to degrees. A zero or
// absent value is not a reading.
type Measurements map[string]float64

// ROMReadings is the scorable part of a ROM assessment.
type ROMReadings struct {
	SelectedRegions []catalog.Region
	Measurements    Measurements
}

type ROMStatusBucket string

const (
	ROMStatusNormal   ROMStatusBucket = "normal"
	ROMStatusMild     ROMStatusBucket = "mild"
	ROMStatusModerate ROMStatusBucket = "moderate"
	ROMStatusSevere   ROMStatusBucket = "severe"
)

type RegionScore struct {
	Region     catalog.Region `json:"region"`
	Name       string         `json:"name"`
	Percentage int            `json:"percentage"`
}

type RegionComparisonRow struct {
	Region catalog.Region `json:"region"`
	Name   string         `json:"name"`
	Pre    int            `json:"pre"`
	Post   int            `json:"post"`
}

type MeasurementResult struct {
	Key           string          `json:"key"`
	MeasurementID string          `json:"measurement_id"`
	Region        catalog.Region  `json:"region"`
	Movement      string          `json:"movement"`
	Side          catalog.Side    `json:"side,omitempty"`
	Degrees       float64         `json:"degrees"`
	NormalMax     float64         `json:"normal_max"`
	Percentage    int             `json:"percentage"`
	Status        ROMStatusBucket `json:"status"`
}

// ROMPercentage expresses a reading as a percentage of the normal maximum,
// clamped to 0..100. A zero reading, a zero normal maximum or a NaN gives 0.
func ROMPercentage(measured, normalMax float64) int {
	if measured == 0 || normalMax == 0 {
		return 0
	}
	ratio := measured / normalMax * 100
	switch {
	case math.IsNaN(ratio):
		return 0
	case ratio >= 100:
		return 100
	case ratio <= 0:
		return 0
	}
	return roundHalfUp(ratio)
}

func ROMStatus(percentage int) ROMStatusBucket {
	switch {
	case percentage >= 90:
		return ROMStatusNormal
	case percentage >= 75:
		return ROMStatusMild
	case percentage >= 50:
		return ROMStatusModerate
	}
	return ROMStatusSevere
}

// accumulator sums per-reading percentages of a set of regions.
type accumulator struct {
	total int
	count int
}

func (a *accumulator) addRegion(measurements Measurements, region catalog.Region) {
	for _, slot := range catalog.MeasurementKeysByRegion(region) {
		value := measurements[slot.Key]
		if value == 0 {
			continue
		}
		a.total += ROMPercentage(value, slot.Measurement.NormalRange.Max)
		a.count++
	}
}

func (a accumulator) mean() int {
	if a.count == 0 {
		return 0
	}
	return roundHalfUp(float64(a.total) / float64(a.count))
}

// OverallROMPercentage is the unweighted mean over every present reading of
// the selected regions. Bilateral sides count as separate readings.
func OverallROMPercentage(readings ROMReadings) int {
	if readings.Measurements == nil {
		return 0
	}
	var acc accumulator
	for _, region := range readings.SelectedRegions {
		acc.addRegion(readings.Measurements, region)
	}
	return acc.mean()
}

func regionPercentage(measurements Measurements, region catalog.Region) int {
	var acc accumulator
	acc.addRegion(measurements, region)
	return acc.mean()
}

// RegionBreakdown scores each selected region on its own, in selection order.
func RegionBreakdown(readings ROMReadings) []RegionScore {
	result := make([]RegionScore, 0, len(readings.SelectedRegions))
	for _, region := range readings.SelectedRegions {
		result = append(result, RegionScore{
			Region:     region,
			Name:       catalog.RegionName(region),
			Percentage: regionPercentage(readings.Measurements, region),
		})
	}
	return result
}

// RegionComparison compares the regions selected in both assessments, in the
// order of the pre selection.
func RegionComparison(pre, post ROMReadings) []RegionComparisonRow {
	inPost := make(map[catalog.Region]bool, len(post.SelectedRegions))
	for _, region := range post.SelectedRegions {
		inPost[region] = true
	}

	result := make([]RegionComparisonRow, 0)
	for _, region := range pre.SelectedRegions {
		if !inPost[region] {
			continue
		}
		result = append(result, RegionComparisonRow{
			Region: region,
			Name:   catalog.RegionName(region),
			Pre:    regionPercentage(pre.Measurements, region),
			Post:   regionPercentage(post.Measurements, region),
		})
	}
	return result
}

// MeasurementResults lists every present reading of the selected regions,
// regions in selection order and readings in catalog order.
func MeasurementResults(readings ROMReadings) []MeasurementResult {
	result := make([]MeasurementResult, 0)
	for _, region := range readings.SelectedRegions {
		for _, slot := range catalog.MeasurementKeysByRegion(region) {
			value := readings.Measurements[slot.Key]
			if value == 0 {
				continue
			}
			normalMax := slot.Measurement.NormalRange.Max
			percentage := ROMPercentage(value, normalMax)
			result = append(result, MeasurementResult{
				Key:           slot.Key,
				MeasurementID: slot.Measurement.ID,
				Region:        region,
				Movement:      slot.Measurement.Movement,
				Side:          slot.Side,
				Degrees:       value,
				NormalMax:     normalMax,
				Percentage:    percentage,
				Status:        ROMStatus(percentage),
			})
		}
	}
	return result
}

// HasReading reports whether any selected region carries a non-zero reading.
func HasReading(readings ROMReadings) bool {
	for _, region := range readings.SelectedRegions {
		for _, slot := range catalog.MeasurementKeysByRegion(region) {
			if readings.Measurements[slot.Key] != 0 {
				return true
			}
		}
	}
	return false
}

package rom_assessments

import (
	"fmt"
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/scoring"
	"ot-tracking-service/internal/pkg/utils"
	"sort"
	"strings"
)

// parseRegions validates the selected regions and removes duplicates while
// keeping the first occurrence order.
func parseRegions(raw []string) ([]catalog.Region, error) {
	seen := make(map[catalog.Region]bool, len(raw))
	regions := make([]catalog.Region, 0, len(raw))
	for _, value := range raw {
		region := catalog.Region(strings.TrimSpace(value))
		if !catalog.IsValidRegion(region) {
			return nil, exceptions.ErrUnknownRegion(fmt.Errorf("unknown region %q", value), value)
		}
		if seen[region] {
			continue
		}
		seen[region] = true
		regions = append(regions, region)
	}
	return regions, nil
}

const maxReadingDegrees = 360

// parseMeasurements keeps the readings that belong to a selected region.
// Blank, non-numeric, non-finite and zero values are not readings and are
// dropped. Values outside 0..360 degrees are rejected.
func parseMeasurements(raw map[string]interface{}, regions []catalog.Region) (scoring.Measurements, error) {
	selected := make(map[catalog.Region]bool, len(regions))
	for _, region := range regions {
		selected[region] = true
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parsed := make(scoring.Measurements, len(raw))
	for _, key := range keys {
		slot, ok := catalog.LookupKey(key)
		if !ok {
			return nil, exceptions.ErrUnknownMeasurement(fmt.Errorf("unknown measurement %q", key), key)
		}

		value, present, err := utils.ParseNumericValue(raw[key])
		if err != nil || !present || value == 0 {
			continue
		}
		if value < 0 || value > maxReadingDegrees {
			return nil, exceptions.ErrInvalidFormat(fmt.Errorf("reading %v outside 0..%v degrees", value, maxReadingDegrees), key)
		}
		if !selected[slot.Measurement.Region] {
			continue
		}
		parsed[slot.Key] = value
	}
	return parsed, nil
}

func checkCompletion(status string, readings scoring.ROMReadings) error {
	parsedStatus, err := scoring.ParseAssessmentStatus(status)
	if err != nil || !parsedStatus.IsComplete() {
		return nil
	}
	if len(readings.SelectedRegions) == 0 {
		return exceptions.ErrROMRegionRequired(nil)
	}
	if !scoring.HasReading(readings) {
		return exceptions.ErrROMMeasurementRequired(nil)
	}
	return nil
}

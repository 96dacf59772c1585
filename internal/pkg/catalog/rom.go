package catalog

import "strings"

type Region string

const (
	RegionShoulder Region = "shoulder"
	RegionElbow    Region = "elbow"
	RegionWrist    Region = "wrist"
	RegionHip      Region = "hip"
	RegionKnee     Region = "knee"
	RegionAnkle    Region = "ankle"
	RegionSpine    Region = "spine"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	// SideNone marks the single reading of a unilateral movement.
	SideNone Side = ""
)

type NormalRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

type Measurement struct {
	ID          string      `json:"id" bson:"id"`
	Region      Region      `json:"region" bson:"region"`
	Movement    string      `json:"movement" bson:"movement"`
	NormalRange NormalRange `json:"normal_range" bson:"normal_range"`
	Description string      `json:"description" bson:"description"`
	Bilateral   bool        `json:"bilateral" bson:"bilateral"`
}

// MeasurementKey is one storable reading slot of a movement.
type MeasurementKey struct {
	Key         string
	Measurement Measurement
	Side        Side
}

var regions = []Region{
	RegionShoulder,
	RegionElbow,
	RegionWrist,
	RegionHip,
	RegionKnee,
	RegionAnkle,
	RegionSpine,
}

var regionNames = map[Region]string{
	RegionShoulder: "Shoulder",
	RegionElbow:    "Elbow/Forearm",
	RegionWrist:    "Wrist",
	RegionHip:      "Hip",
	RegionKnee:     "Knee",
	RegionAnkle:    "Ankle",
	RegionSpine:    "Spine",
}

func rng(upper float64) NormalRange {
	return NormalRange{Min: 0, Max: upper}
}

var measurements = []Measurement{
	{ID: "shoulder_flexion", Region: RegionShoulder, Movement: "Flexion", NormalRange: rng(180), Description: "Raise arm forward and upward", Bilateral: true},
	{ID: "shoulder_extension", Region: RegionShoulder, Movement: "Extension", NormalRange: rng(60), Description: "Move arm backward", Bilateral: true},
	{ID: "shoulder_abduction", Region: RegionShoulder, Movement: "Abduction", NormalRange: rng(180), Description: "Raise arm out to the side", Bilateral: true},
	{ID: "shoulder_adduction", Region: RegionShoulder, Movement: "Adduction", NormalRange: rng(50), Description: "Move arm across body", Bilateral: true},
	{ID: "shoulder_internal_rotation", Region: RegionShoulder, Movement: "Internal Rotation", NormalRange: rng(70), Description: "Rotate arm inward", Bilateral: true},
	{ID: "shoulder_external_rotation", Region: RegionShoulder, Movement: "External Rotation", NormalRange: rng(90), Description: "Rotate arm outward", Bilateral: true},

	{ID: "elbow_flexion", Region: RegionElbow, Movement: "Flexion", NormalRange: rng(150), Description: "Bend elbow", Bilateral: true},
	{ID: "elbow_extension", Region: RegionElbow, Movement: "Extension", NormalRange: rng(0), Description: "Straighten elbow", Bilateral: true},
	{ID: "forearm_supination", Region: RegionElbow, Movement: "Supination", NormalRange: rng(80), Description: "Rotate forearm palm up", Bilateral: true},
	{ID: "forearm_pronation", Region: RegionElbow, Movement: "Pronation", NormalRange: rng(80), Description: "Rotate forearm palm down", Bilateral: true},

	{ID: "wrist_flexion", Region: RegionWrist, Movement: "Flexion", NormalRange: rng(80), Description: "Bend wrist forward", Bilateral: true},
	{ID: "wrist_extension", Region: RegionWrist, Movement: "Extension", NormalRange: rng(70), Description: "Bend wrist backward", Bilateral: true},
	{ID: "wrist_radial_deviation", Region: RegionWrist, Movement: "Radial Deviation", NormalRange: rng(20), Description: "Bend wrist toward thumb", Bilateral: true},
	{ID: "wrist_ulnar_deviation", Region: RegionWrist, Movement: "Ulnar Deviation", NormalRange: rng(30), Description: "Bend wrist toward pinky", Bilateral: true},

	{ID: "hip_flexion", Region: RegionHip, Movement: "Flexion", NormalRange: rng(120), Description: "Raise thigh toward chest", Bilateral: true},
	{ID: "hip_extension", Region: RegionHip, Movement: "Extension", NormalRange: rng(30), Description: "Move thigh backward", Bilateral: true},
	{ID: "hip_abduction", Region: RegionHip, Movement: "Abduction", NormalRange: rng(45), Description: "Move leg out to side", Bilateral: true},
	{ID: "hip_adduction", Region: RegionHip, Movement: "Adduction", NormalRange: rng(30), Description: "Move leg across body", Bilateral: true},
	{ID: "hip_internal_rotation", Region: RegionHip, Movement: "Internal Rotation", NormalRange: rng(45), Description: "Rotate thigh inward", Bilateral: true},
	{ID: "hip_external_rotation", Region: RegionHip, Movement: "External Rotation", NormalRange: rng(45), Description: "Rotate thigh outward", Bilateral: true},

	{ID: "knee_flexion", Region: RegionKnee, Movement: "Flexion", NormalRange: rng(135), Description: "Bend knee", Bilateral: true},
	{ID: "knee_extension", Region: RegionKnee, Movement: "Extension", NormalRange: rng(0), Description: "Straighten knee", Bilateral: true},

	{ID: "ankle_dorsiflexion", Region: RegionAnkle, Movement: "Dorsiflexion", NormalRange: rng(20), Description: "Bring toes toward shin", Bilateral: true},
	{ID: "ankle_plantarflexion", Region: RegionAnkle, Movement: "Plantarflexion", NormalRange: rng(50), Description: "Point toes downward", Bilateral: true},
	{ID: "ankle_inversion", Region: RegionAnkle, Movement: "Inversion", NormalRange: rng(35), Description: "Turn sole of foot inward", Bilateral: true},
	{ID: "ankle_eversion", Region: RegionAnkle, Movement: "Eversion", NormalRange: rng(15), Description: "Turn sole of foot outward", Bilateral: true},

	{ID: "cervical_flexion", Region: RegionSpine, Movement: "Cervical Flexion", NormalRange: rng(45), Description: "Bend neck forward"},
	{ID: "cervical_extension", Region: RegionSpine, Movement: "Cervical Extension", NormalRange: rng(45), Description: "Bend neck backward"},
	{ID: "cervical_lateral_flexion", Region: RegionSpine, Movement: "Cervical Lateral Flexion", NormalRange: rng(45), Description: "Bend neck to side", Bilateral: true},
	{ID: "cervical_rotation", Region: RegionSpine, Movement: "Cervical Rotation", NormalRange: rng(60), Description: "Turn head to side", Bilateral: true},
	{ID: "lumbar_flexion", Region: RegionSpine, Movement: "Lumbar Flexion", NormalRange: rng(80), Description: "Bend trunk forward"},
	{ID: "lumbar_extension", Region: RegionSpine, Movement: "Lumbar Extension", NormalRange: rng(25), Description: "Bend trunk backward"},
	{ID: "lumbar_lateral_flexion", Region: RegionSpine, Movement: "Lumbar Lateral Flexion", NormalRange: rng(25), Description: "Bend trunk to side", Bilateral: true},
	{ID: "lumbar_rotation", Region: RegionSpine, Movement: "Lumbar Rotation", NormalRange: rng(45), Description: "Rotate trunk to side", Bilateral: true},
}

var (
	measurementIndex = map[string]Measurement{}
	keyIndex         = map[string]MeasurementKey{}
	orderedKeys      []MeasurementKey
)

func init() {
	for _, m := range measurements {
		measurementIndex[m.ID] = m
		for _, slot := range keysOf(m) {
			keyIndex[slot.Key] = slot
			orderedKeys = append(orderedKeys, slot)
		}
	}
}

func keysOf(m Measurement) []MeasurementKey {
	if !m.Bilateral {
		return []MeasurementKey{{Key: m.ID, Measurement: m, Side: SideNone}}
	}
	return []MeasurementKey{
		{Key: KeyFor(m.ID, SideLeft), Measurement: m, Side: SideLeft},
		{Key: KeyFor(m.ID, SideRight), Measurement: m, Side: SideRight},
	}
}

// KeyFor builds the measurement map key of a movement reading.
func KeyFor(measurementID string, side Side) string {
	if side == SideNone {
		return measurementID
	}
	return measurementID + "_" + string(side)
}

func Regions() []Region {
	return append([]Region(nil), regions...)
}

func RegionName(region Region) string {
	return regionNames[region]
}

func IsValidRegion(region Region) bool {
	_, ok := regionNames[region]
	return ok
}

func Measurements() []Measurement {
	return append([]Measurement(nil), measurements...)
}

func MeasurementsByRegion(region Region) []Measurement {
	var result []Measurement
	for _, m := range measurements {
		if m.Region == region {
			result = append(result, m)
		}
	}
	return result
}

func MeasurementByID(measurementID string) (Measurement, bool) {
	m, ok := measurementIndex[measurementID]
	return m, ok
}

// LookupKey resolves a stored reading key such as "hip_flexion_left".
func LookupKey(key string) (MeasurementKey, bool) {
	slot, ok := keyIndex[strings.TrimSpace(key)]
	return slot, ok
}

// MeasurementKeys lists every reading slot in catalog order.
func MeasurementKeys() []MeasurementKey {
	return append([]MeasurementKey(nil), orderedKeys...)
}

func MeasurementKeysByRegion(region Region) []MeasurementKey {
	var result []MeasurementKey
	for _, slot := range orderedKeys {
		if slot.Measurement.Region == region {
			result = append(result, slot)
		}
	}
	return result
}

package scoring

import "math"

// roundHalfUp rounds .5 ties toward +Inf.
func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

func round2(value float64) float64 {
	return math.Floor(value*100+0.5) / 100
}

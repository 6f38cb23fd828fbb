package servo

import "fmt"

// Point is one measured correspondence between a commanded angle and the
// raw input value that actually reaches it on a specific servo.
type Point struct {
	Angle int `json:"angle"`
	Raw   int `json:"raw"`
}

// Table is an ordered calibration curve. SG90-class servos travel
// non-linearly near the mechanical stops, so a handful of measured points
// with linear interpolation between them beats a single scale factor.
type Table []Point

// DefaultTable is the measured curve for the reference servo. The raw
// value at 180 degrees tops out at 168, not 180.
var DefaultTable = Table{
	{Angle: 0, Raw: 0},
	{Angle: 45, Raw: 30},
	{Angle: 90, Raw: 80},
	{Angle: 135, Raw: 120},
	{Angle: 180, Raw: 168},
}

// Validate checks the invariants a usable curve needs: at least two points,
// endpoints at 0 and 180 degrees, both coordinates monotone non-decreasing
// with strictly increasing angles.
func (t Table) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("calibration needs at least 2 points, got %d", len(t))
	}
	if t[0].Angle != 0 {
		return fmt.Errorf("first calibration point must be at 0 degrees, got %d", t[0].Angle)
	}
	if t[len(t)-1].Angle != 180 {
		return fmt.Errorf("last calibration point must be at 180 degrees, got %d", t[len(t)-1].Angle)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Angle <= t[i-1].Angle {
			return fmt.Errorf("calibration angles must strictly increase: point %d", i)
		}
		if t[i].Raw < t[i-1].Raw {
			return fmt.Errorf("calibration raw values must not decrease: point %d", i)
		}
	}
	return nil
}

// Interpolate maps a commanded angle to its calibrated raw value by linear
// interpolation between the two surrounding points, all in integer
// arithmetic with truncating division. Angles outside the table are
// returned unchanged; callers validate the range before getting here.
func (t Table) Interpolate(angle int) int {
	for i := 0; i < len(t)-1; i++ {
		if angle >= t[i].Angle && angle <= t[i+1].Angle {
			x1, y1 := t[i].Angle, t[i].Raw
			x2, y2 := t[i+1].Angle, t[i+1].Raw
			return y1 + (angle-x1)*(y2-y1)/(x2-x1)
		}
	}
	return angle
}

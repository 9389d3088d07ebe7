package render

import "math"

// Segment is one visible piece of a dashed line.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// DashSegments splits the line (x0, y0)-(x1, y1) into the visible segments
// of the on/off pattern, starting with an "on" run at (x0, y0). An empty or
// non-positive pattern yields the whole line.
func DashSegments(x0, y0, x1, y1 float64, pattern []float64) []Segment {
	whole := []Segment{{x0, y0, x1, y1}}
	if len(pattern) == 0 {
		return whole
	}
	period := 0.0
	for _, p := range pattern {
		if p < 0 {
			return whole
		}
		period += p
	}
	if period <= 0 {
		return whole
	}

	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return nil
	}
	dx, dy := (x1-x0)/length, (y1-y0)/length

	var segments []Segment
	pos := 0.0
	for i := 0; pos < length; i++ {
		run := pattern[i%len(pattern)]
		end := math.Min(pos+run, length)
		// even runs are dashes, odd runs are gaps
		if i%2 == 0 && end > pos {
			segments = append(segments, Segment{
				X0: x0 + dx*pos,
				Y0: y0 + dy*pos,
				X1: x0 + dx*end,
				Y1: y0 + dy*end,
			})
		}
		pos = end
	}
	return segments
}

package schedule

// Interval is a half-open [StartMinutes, EndMinutes) range of
// minutes-since-local-midnight on a specific date.
type Interval struct {
	StartMinutes int `json:"startMinutes"`
	EndMinutes   int `json:"endMinutes"`
}

// Overlaps implements half-open intersection. Zero-length intervals never
// overlap anything.
func Overlaps(startA, endA, startB, endB int) bool {
	if startA == endA || startB == endB {
		return false
	}
	return startA < endB && endA > startB
}

func (iv Interval) Overlaps(other Interval) bool {
	return Overlaps(iv.StartMinutes, iv.EndMinutes, other.StartMinutes, other.EndMinutes)
}

// ConflictsAny reports whether [start, end) intersects any of the intervals.
func ConflictsAny(start, end int, intervals []Interval) bool {
	for _, iv := range intervals {
		if Overlaps(start, end, iv.StartMinutes, iv.EndMinutes) {
			return true
		}
	}
	return false
}

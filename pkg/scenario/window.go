package scenario

import (
	"fmt"
	"time"
)

// TimeLayout is the ISO-8601 form the CLI accepts for window bounds.
const TimeLayout = "2006-01-02T15:04:05"

// Window is the simulated time span, inclusive at both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseWindow parses and orders the two CLI timestamps.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.Parse(TimeLayout, start)
	if err != nil {
		return Window{}, fmt.Errorf("start time %q is not of the form yyyy-MM-ddTHH:mm:ss", start)
	}
	e, err := time.Parse(TimeLayout, end)
	if err != nil {
		return Window{}, fmt.Errorf("end time %q is not of the form yyyy-MM-ddTHH:mm:ss", end)
	}
	if !s.Before(e) {
		return Window{}, fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return Window{Start: s.Truncate(time.Hour), End: e.Truncate(time.Hour)}, nil
}

// Hours returns the hourly timestamp axis covering [Start, End]
// inclusive, strictly increasing at one-hour steps.
func (w Window) Hours() []time.Time {
	hours := make([]time.Time, 0, w.HourCount())
	for t := w.Start; !t.After(w.End); t = t.Add(time.Hour) {
		hours = append(hours, t)
	}
	return hours
}

// HourCount is the number of hourly points in the window.
func (w Window) HourCount() int {
	return int(w.End.Sub(w.Start)/time.Hour) + 1
}

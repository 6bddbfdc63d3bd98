package entity

import "time"

// CompletionStats holds completion percentages (0-100) of a task for several windows.
type CompletionStats struct {
	Today   float64 `json:"today_completion"`
	Week    float64 `json:"week_completion"`
	Month   float64 `json:"month_completion"`
	Overall float64 `json:"overall_completion"`
}

// Completion returns the share of complete details among all details logged
// on days not before since, as a percentage. Zero when nothing was logged.
func (t *Task) Completion(since time.Time) float64 {
	var total, complete int
	for _, entry := range t.Work {
		if entry.Date.Before(since) {
			continue
		}
		total += len(entry.Details)
		for _, d := range entry.Details {
			if d.IsComplete {
				complete++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(complete) / float64(total) * 100
}

// Stats computes completion windows relative to now. "Today", the week start
// (Sunday) and the month start are UTC calendar days, whatever the location of now.
func (t *Task) Stats(now time.Time) CompletionStats {
	today := TruncateDay(now)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return CompletionStats{
		Today:   t.Completion(today),
		Week:    t.Completion(weekStart),
		Month:   t.Completion(monthStart),
		Overall: t.Completion(t.overallStart()),
	}
}

// overallStart is the creation day, or the first logged day if work was backfilled.
func (t *Task) overallStart() time.Time {
	start := TruncateDay(t.CreatedAt)
	for _, entry := range t.Work {
		if entry.Date.Before(start) {
			start = entry.Date
		}
	}
	return start
}

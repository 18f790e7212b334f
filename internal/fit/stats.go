package fit

import "time"

// Volume returns the total lifted volume for the given exercise entries.
// Only sets marked as completed contribute, with reps * weight each.
func Volume(exercises []ExerciseEntry) float64 {
	var total float64
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				total += float64(set.Reps) * set.Weight
			}
		}
	}
	return total
}

// WorkoutsInWeek counts calendar entries within the last 7 days from now.
func WorkoutsInWeek(entries []CalendarEntry, now time.Time) int {
	oneWeekAgo := now.AddDate(0, 0, -7)
	count := 0
	for _, e := range entries {
		date, err := time.Parse(time.DateOnly, DateOnly(e.Date))
		if err != nil {
			continue
		}
		if !date.Before(oneWeekAgo) {
			count++
		}
	}
	return count
}

// WorkoutsInMonth counts calendar entries within the given year and month.
func WorkoutsInMonth(entries []CalendarEntry, year int, month time.Month) int {
	count := 0
	for _, e := range entries {
		date, err := time.Parse(time.DateOnly, DateOnly(e.Date))
		if err != nil {
			continue
		}
		if date.Year() == year && date.Month() == month {
			count++
		}
	}
	return count
}

// WorkoutsOnDate returns all calendar entries completed on the given
// YYYY-MM-DD date.
func WorkoutsOnDate(entries []CalendarEntry, date string) []CalendarEntry {
	var found []CalendarEntry
	for _, e := range entries {
		if DateOnly(e.Date) == date {
			found = append(found, e)
		}
	}
	return found
}

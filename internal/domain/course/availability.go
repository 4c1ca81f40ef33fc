package course

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Availability groups a course's slots by calendar date. ByDate holds every
// slot, booked or not, keyed by its raw date string in admin insertion
// order. AvailableDates lists only dates with at least one open slot,
// ascending.
type Availability struct {
	ByDate         map[string][]Slot
	AvailableDates []string
}

// IndexSlots builds the availability index. Slots with unparseable dates
// are still grouped under their raw key so admin views can surface them,
// but they never appear in AvailableDates.
func IndexSlots(slots []Slot) Availability {
	byDate := make(map[string][]Slot)
	open := make(map[string]bool)

	for _, s := range slots {
		byDate[s.Date] = append(byDate[s.Date], s)
		if !s.IsBooked() {
			open[s.Date] = true
		}
	}

	dates := make([]string, 0, len(open))
	for date := range open {
		if _, err := time.Parse(dateLayout, date); err != nil {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)

	return Availability{
		ByDate:         byDate,
		AvailableDates: dates,
	}
}

package validation

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar-date window expanded to full days in
// UTC: start at 00:00:00.000, end at 23:59:59.999.
type DateRange struct {
	Start time.Time
	End   time.Time

	// Original date strings, kept for report labels and export filenames.
	StartLabel string
	EndLabel   string
}

// ParseDateRange validates and expands a start/end date pair.
func ParseDateRange(start, end string) (*DateRange, error) {
	if start == "" || end == "" {
		return nil, fmt.Errorf("Both start and end dates are required.")
	}

	startDate, err := time.ParseInLocation(dateLayout, start, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("Invalid date range.")
	}
	endDate, err := time.ParseInLocation(dateLayout, end, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("Invalid date range.")
	}

	if startDate.After(endDate) {
		return nil, fmt.Errorf("Start date cannot be after end date.")
	}

	return &DateRange{
		Start:      startDate,
		End:        endDate.Add(24*time.Hour - time.Millisecond),
		StartLabel: start,
		EndLabel:   end,
	}, nil
}

package gallery

import (
	"sort"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
)

// AvailableMonths buckets creation times into distinct months of loc, newest
// first.
func AvailableMonths(times []time.Time, loc *time.Location) []entity.Month {
	seen := make(map[entity.Month]struct{})
	months := make([]entity.Month, 0)

	for _, t := range times {
		m := entity.MonthOf(t, loc)
		if _, ok := seen[m]; ok {
			continue
		}

		seen[m] = struct{}{}
		months = append(months, m)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[j].Before(months[i])
	})

	return months
}

// Older returns the newest available month before current, nil when current
// is the oldest. available must be sorted newest first.
func Older(available []entity.Month, current entity.Month) *entity.Month {
	for _, m := range available {
		if m.Before(current) {
			return &m
		}
	}

	return nil
}

// Newer returns the oldest available month after current, nil when current
// is the newest.
func Newer(available []entity.Month, current entity.Month) *entity.Month {
	for i := len(available) - 1; i >= 0; i-- {
		if available[i].After(current) {
			m := available[i]
			return &m
		}
	}

	return nil
}

package core

import "sort"

// StatusCount pairs a status with how many applications carry it.
type StatusCount struct {
	Status Status
	Count  int
}

// StatusHistogram counts applications per status. Every canonical status
// appears in the result, zero-filled, in canonical order.
func StatusHistogram(apps []Application) []StatusCount {
	counts := make(map[Status]int, len(Statuses))
	for _, a := range apps {
		counts[a.Status]++
	}
	out := make([]StatusCount, len(Statuses))
	for i, s := range Statuses {
		out[i] = StatusCount{Status: s, Count: counts[s]}
	}
	return out
}

// MonthlyHistogram buckets applications dated in year by calendar month
// (index 0 = January). Applications from other years are excluded.
func MonthlyHistogram(apps []Application, year int) [12]int {
	var months [12]int
	for _, a := range apps {
		if a.Date.Year() == year {
			months[a.Date.Month()-1]++
		}
	}
	return months
}

// SortByDateDesc returns a new slice sorted most recent first. The sort is
// stable so applications sharing a date keep their relative order.
func SortByDateDesc(apps []Application) []Application {
	sorted := make([]Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	return sorted
}

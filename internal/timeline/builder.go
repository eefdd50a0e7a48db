package timeline

import (
	"sort"
	"time"
)

// Overlaps reports whether the date ranges of a and b intersect, treating
// an absent end as the month containing now.
func Overlaps(a, b Entry, now time.Time) bool {
	cur := FromTime(now)
	return a.Start.Compare(overlapEnd(b, cur)) <= 0 &&
		b.Start.Compare(overlapEnd(a, cur)) <= 0
}

// Sort returns a copy of entries with ongoing entries first, then each
// partition ordered by start, most recent first. Ties keep input order.
func Sort(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ea, eb := sortEnd(a), sortEnd(b)
		if ea.open != eb.open {
			return ea.open
		}
		return a.Start.Compare(b.Start) > 0
	})
	return sorted
}

// Build groups entries into timeline rows.
//
// An entry joins the previous row only when that row's primary is ongoing,
// the two overlap, and the entry itself has an end date. Earlier rows are
// never revisited.
func Build(entries []Entry, now time.Time) []Row {
	sorted := Sort(entries)

	var groups [][]Entry
	for _, e := range sorted {
		if n := len(groups); n > 0 {
			primary := groups[n-1][0]
			if primary.Ongoing() && !e.Ongoing() && Overlaps(primary, e, now) {
				groups[n-1] = append(groups[n-1], e)
				continue
			}
		}
		groups = append(groups, []Entry{e})
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		row := Row{Primary: g[0], Concurrent: []Entry{}}
		row.Concurrent = append(row.Concurrent, g[1:]...)
		rows = append(rows, row)
	}
	return rows
}

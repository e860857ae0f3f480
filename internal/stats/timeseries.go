package stats

import (
	"time"

	"stayadmin-service/internal/model"
)

// MaxWindowDays is the widest supported chart window. The full series is
// always computed at this width and then sliced, so switching windows
// never recomputes from raw input.
const MaxWindowDays = 90

const dateLayout = "2006-01-02"

// Point is one calendar day of the cumulative dashboard series
type Point struct {
	Date       string `json:"date"`
	Properties int    `json:"properties"`
	Verified   int    `json:"verified"`
	Pending    int    `json:"pending"`
	Students   int    `json:"students"`
}

// WindowDays resolves a range token (7d/30d/90d) to a day count.
// Unknown tokens fall back to the maximum window.
func WindowDays(token string) int {
	switch token {
	case "7d":
		return 7
	case "30d":
		return 30
	default:
		return MaxWindowDays
	}
}

// day truncates a timestamp to its calendar day. UTC is used as the one
// day boundary across the whole system.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeSeries turns the four creation-timestamp collections into a
// cumulative daily series covering now-days .. now inclusive. Records
// outside the window or with a zero timestamp are silently skipped.
// If any source collection is nil (not yet loaded), the result is empty:
// callers gate invocation on full data availability.
func TimeSeries(posts []model.Post, verified, pending, students []model.User, days int, now time.Time) []Point {
	if posts == nil || verified == nil || pending == nil || students == nil {
		return nil
	}

	today := day(now)
	start := today.AddDate(0, 0, -days)

	// One bucket per calendar day, oldest first
	type bucket struct {
		properties, verified, pending, students int
	}
	index := make(map[string]*bucket, days+1)
	dates := make([]string, 0, days+1)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		index[key] = &bucket{}
		dates = append(dates, key)
	}

	countUser := func(items []model.User, metric func(*bucket) *int) {
		for i := range items {
			if items[i].CreatedAt.IsZero() {
				continue
			}
			if b, ok := index[day(items[i].CreatedAt).Format(dateLayout)]; ok {
				*metric(b)++
			}
		}
	}

	for i := range posts {
		if posts[i].CreatedAt.IsZero() {
			continue
		}
		if b, ok := index[day(posts[i].CreatedAt).Format(dateLayout)]; ok {
			b.properties++
		}
	}
	countUser(verified, func(b *bucket) *int { return &b.verified })
	countUser(pending, func(b *bucket) *int { return &b.pending })
	countUser(students, func(b *bucket) *int { return &b.students })

	// Walk the buckets chronologically accumulating running totals, so
	// every metric is monotonically non-decreasing.
	series := make([]Point, 0, len(dates))
	var cum bucket
	for _, key := range dates {
		b := index[key]
		cum.properties += b.properties
		cum.verified += b.verified
		cum.pending += b.pending
		cum.students += b.students
		series = append(series, Point{
			Date:       key,
			Properties: cum.properties,
			Verified:   cum.verified,
			Pending:    cum.pending,
			Students:   cum.students,
		})
	}

	return series
}

// Window returns the trailing slice of a full-width series matching the
// selected window, element-for-element identical to the tail of the
// 90-day series.
func Window(full []Point, days int, now time.Time) []Point {
	if len(full) == 0 {
		return full
	}

	start := day(now).AddDate(0, 0, -days).Format(dateLayout)
	for i, p := range full {
		if p.Date >= start {
			return full[i:]
		}
	}
	return []Point{}
}

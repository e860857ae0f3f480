package stats

import (
	"time"

	"stayadmin-service/internal/model"
)

// Card is one overview tile: a total plus how many of those records were
// created within the tile's trailing window.
type Card struct {
	Total      int    `json:"total"`
	TrendCount int    `json:"trend_count"`
	Period     string `json:"period"`
}

// Overview holds the dashboard summary cards
type Overview struct {
	Properties Card `json:"properties"`
	Verified   Card `json:"verified"`
	Pending    Card `json:"pending"`
	Students   Card `json:"students"`
}

// Summarize computes the overview cards. Properties and landlord cards
// count additions over the trailing 7 days; the student card uses 30,
// matching the dashboard. Zero timestamps never count toward a trend.
func Summarize(posts []model.Post, verified, pending, students []model.User, now time.Time) Overview {
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	countUsersAfter := func(items []model.User, cutoff time.Time) int {
		n := 0
		for i := range items {
			if !items[i].CreatedAt.IsZero() && items[i].CreatedAt.After(cutoff) {
				n++
			}
		}
		return n
	}

	postsThisWeek := 0
	for i := range posts {
		if !posts[i].CreatedAt.IsZero() && posts[i].CreatedAt.After(weekAgo) {
			postsThisWeek++
		}
	}

	return Overview{
		Properties: Card{Total: len(posts), TrendCount: postsThisWeek, Period: "week"},
		Verified:   Card{Total: len(verified), TrendCount: countUsersAfter(verified, weekAgo), Period: "week"},
		Pending:    Card{Total: len(pending), TrendCount: countUsersAfter(pending, weekAgo), Period: "week"},
		Students:   Card{Total: len(students), TrendCount: countUsersAfter(students, monthAgo), Period: "month"},
	}
}

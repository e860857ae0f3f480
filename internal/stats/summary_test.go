package stats

import (
	"testing"
	"time"

	"stayadmin-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	overview := Summarize([]model.Post{}, []model.User{}, []model.User{}, []model.User{}, now)

	assert.Equal(t, Card{Total: 0, TrendCount: 0, Period: "week"}, overview.Properties)
	assert.Equal(t, Card{Total: 0, TrendCount: 0, Period: "week"}, overview.Verified)
	assert.Equal(t, Card{Total: 0, TrendCount: 0, Period: "week"}, overview.Pending)
	assert.Equal(t, Card{Total: 0, TrendCount: 0, Period: "month"}, overview.Students)
}

func TestSummarizeTrendWindows(t *testing.T) {
	posts := []model.Post{
		postAt(now.AddDate(0, 0, -1)),
		postAt(now.AddDate(0, 0, -10)),
	}
	verified := []model.User{
		userAt(now.AddDate(0, 0, -3)),
		userAt(now.AddDate(0, 0, -8)),
		userAt(now.AddDate(0, 0, -9)),
	}
	pending := []model.User{userAt(now.AddDate(0, 0, -6))}
	students := []model.User{
		userAt(now.AddDate(0, 0, -20)),
		userAt(now.AddDate(0, -2, 0)),
	}

	overview := Summarize(posts, verified, pending, students, now)

	// Totals count everything; trends only the trailing window
	assert.Equal(t, Card{Total: 2, TrendCount: 1, Period: "week"}, overview.Properties)
	assert.Equal(t, Card{Total: 3, TrendCount: 1, Period: "week"}, overview.Verified)
	assert.Equal(t, Card{Total: 1, TrendCount: 1, Period: "week"}, overview.Pending)

	// Students use a month window, so the 20-day-old record counts
	assert.Equal(t, Card{Total: 2, TrendCount: 1, Period: "month"}, overview.Students)
}

func TestSummarizeZeroTimestampsNeverTrend(t *testing.T) {
	posts := []model.Post{postAt(time.Time{})}
	users := []model.User{userAt(time.Time{})}

	overview := Summarize(posts, users, users, users, now)

	assert.Equal(t, 1, overview.Properties.Total)
	assert.Equal(t, 0, overview.Properties.TrendCount)
	assert.Equal(t, 0, overview.Verified.TrendCount)
	assert.Equal(t, 0, overview.Students.TrendCount)
}

package stats

import (
	"testing"
	"time"

	"stayadmin-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC)

func postAt(t time.Time) model.Post {
	return model.Post{CreatedAt: t}
}

func userAt(t time.Time) model.User {
	return model.User{CreatedAt: t}
}

func TestWindowDays(t *testing.T) {
	assert.Equal(t, 7, WindowDays("7d"))
	assert.Equal(t, 30, WindowDays("30d"))
	assert.Equal(t, 90, WindowDays("90d"))
	assert.Equal(t, MaxWindowDays, WindowDays(""))
	assert.Equal(t, MaxWindowDays, WindowDays("1y"))
}

func TestTimeSeriesNilGating(t *testing.T) {
	users := []model.User{}
	posts := []model.Post{}

	assert.Nil(t, TimeSeries(nil, users, users, users, 7, now))
	assert.Nil(t, TimeSeries(posts, nil, users, users, 7, now))
	assert.Nil(t, TimeSeries(posts, users, nil, users, 7, now))
	assert.Nil(t, TimeSeries(posts, users, users, nil, 7, now))
	assert.NotNil(t, TimeSeries(posts, users, users, users, 7, now))
}

func TestTimeSeriesShape(t *testing.T) {
	empty := []model.User{}
	series := TimeSeries([]model.Post{}, empty, empty, empty, 7, now)

	require.Len(t, series, 8)
	assert.Equal(t, "2026-06-03", series[0].Date)
	assert.Equal(t, "2026-06-10", series[len(series)-1].Date)

	// Dates are gap-free and ascending
	for i := 1; i < len(series); i++ {
		prev, err := time.Parse("2006-01-02", series[i-1].Date)
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1).Format("2006-01-02"), series[i].Date)
	}
}

func TestTimeSeriesCumulative(t *testing.T) {
	posts := []model.Post{
		postAt(now.AddDate(0, 0, -6)),
		postAt(now.AddDate(0, 0, -6)),
		postAt(now.AddDate(0, 0, -2)),
	}
	verified := []model.User{userAt(now.AddDate(0, 0, -4))}
	pending := []model.User{userAt(now)}
	students := []model.User{
		userAt(now.AddDate(0, 0, -6)),
		userAt(now.AddDate(0, 0, -3)),
		userAt(now.AddDate(0, 0, -1)),
	}

	series := TimeSeries(posts, verified, pending, students, 7, now)
	require.Len(t, series, 8)

	last := series[len(series)-1]
	assert.Equal(t, 3, last.Properties)
	assert.Equal(t, 1, last.Verified)
	assert.Equal(t, 1, last.Pending)
	assert.Equal(t, 3, last.Students)

	// Every metric is monotonically non-decreasing
	for i := 1; i < len(series); i++ {
		assert.GreaterOrEqual(t, series[i].Properties, series[i-1].Properties)
		assert.GreaterOrEqual(t, series[i].Verified, series[i-1].Verified)
		assert.GreaterOrEqual(t, series[i].Pending, series[i-1].Pending)
		assert.GreaterOrEqual(t, series[i].Students, series[i-1].Students)
	}

	// The two posts on day -6 both land in that day's bucket
	assert.Equal(t, 2, series[1].Properties)
}

func TestTimeSeriesSkipsOutOfWindowAndZero(t *testing.T) {
	posts := []model.Post{
		postAt(now.AddDate(0, 0, -30)),
		postAt(time.Time{}),
		postAt(now),
	}
	empty := []model.User{}

	series := TimeSeries(posts, empty, empty, empty, 7, now)
	require.NotEmpty(t, series)
	assert.Equal(t, 1, series[len(series)-1].Properties)
}

func TestWindowMatchesFullSeriesTail(t *testing.T) {
	posts := []model.Post{
		postAt(now.AddDate(0, 0, -80)),
		postAt(now.AddDate(0, 0, -20)),
		postAt(now.AddDate(0, 0, -3)),
	}
	verified := []model.User{userAt(now.AddDate(0, 0, -50))}
	pending := []model.User{userAt(now.AddDate(0, 0, -5))}
	students := []model.User{userAt(now.AddDate(0, 0, -2))}

	full := TimeSeries(posts, verified, pending, students, MaxWindowDays, now)
	require.Len(t, full, MaxWindowDays+1)

	for _, days := range []int{7, 30, 90} {
		window := Window(full, days, now)
		require.Len(t, window, days+1)

		// Element-for-element identical to the tail of the full series
		assert.Equal(t, full[len(full)-len(window):], window)
	}
}

func TestWindowEmptySeries(t *testing.T) {
	assert.Empty(t, Window(nil, 7, now))
	assert.Empty(t, Window([]Point{}, 7, now))
}

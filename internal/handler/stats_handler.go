package handler

import (
	"net/http"
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/internal/stats"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statsInput loads the four collections every dashboard figure is
// derived from. A nil return means the response was already written.
func statsInput(c echo.Context) ([]model.Post, []model.User, []model.User, []model.User, bool) {
	log := logger.FromContext(c)
	db := database.GetDB()

	defer prometheus.TrackDBOperation("query")(time.Now())

	fail := func(err error) ([]model.Post, []model.User, []model.User, []model.User, bool) {
		log.Error("Failed to load dashboard data", zap.Error(err))
		prometheus.RecordError("db_error")
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard data"})
		return nil, nil, nil, nil, false
	}

	posts := []model.Post{}
	if result := db.Find(&posts); result.Error != nil {
		return fail(result.Error)
	}

	verified := []model.User{}
	if result := db.Where("account_type = ?", model.AccountTypeLandlord).Find(&verified); result.Error != nil {
		return fail(result.Error)
	}

	pending := []model.User{}
	if result := db.Where("account_type = ?", model.AccountTypeLandlordUnverified).Find(&pending); result.Error != nil {
		return fail(result.Error)
	}

	students := []model.User{}
	if result := db.Where("student_id IS NOT NULL").Find(&students); result.Error != nil {
		return fail(result.Error)
	}

	return posts, verified, pending, students, true
}

// StatsOverview returns the four summary cards
func StatsOverview(c echo.Context) error {
	posts, verified, pending, students, ok := statsInput(c)
	if !ok {
		return nil
	}

	return c.JSON(http.StatusOK, stats.Summarize(posts, verified, pending, students, time.Now()))
}

// StatsTimeSeries returns the cumulative daily growth series. The full
// 90-day series is computed once and the requested window (?range=7d,
// 30d or 90d) is sliced from its tail.
func StatsTimeSeries(c echo.Context) error {
	posts, verified, pending, students, ok := statsInput(c)
	if !ok {
		return nil
	}

	now := time.Now()
	full := stats.TimeSeries(posts, verified, pending, students, stats.MaxWindowDays, now)

	rangeToken := c.QueryParam("range")
	series := stats.Window(full, stats.WindowDays(rangeToken), now)

	return c.JSON(http.StatusOK, echo.Map{
		"range":  rangeToken,
		"series": series,
	})
}

package handler

import (
	"net/http"
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListRequests returns rental requests with their requester and listing.
// By default only confirmed requests are returned; ?confirmed=false
// selects the still-open ones instead.
func ListRequests(c echo.Context) error {
	log := logger.FromContext(c)

	confirmed := c.QueryParam("confirmed") != "false"

	defer prometheus.TrackDBOperation("query")(time.Now())
	var requests []model.Request
	result := database.GetDB().
		Preload("User").
		Preload("Post").
		Preload("Post.User").
		Where("confirmed = ?", confirmed).
		Order("created_at DESC").
		Find(&requests)
	if result.Error != nil {
		log.Error("Failed to list requests", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load requests"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

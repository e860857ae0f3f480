package handler

import (
	"errors"
	"net/http"
	"time"

	"stayadmin-service/internal/suspension"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SuspendAccount maps a duration token to a suspension state and persists
// it as a single atomic update. An invalid token fails before any write.
func SuspendAccount(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("suspend")

	var req struct {
		Duration string `json:"duration"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse suspension request", zap.Error(err))
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	// Validate the token before touching the store
	state, err := suspension.FromToken(req.Duration, time.Now())
	if err != nil {
		var invalid *suspension.InvalidDurationError
		if errors.As(err, &invalid) {
			prometheus.RecordError("invalid_duration")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": invalid.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid suspension duration"})
	}

	user, ok := findUser(c)
	if !ok {
		return nil
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Model(user).Updates(state.Columns()); result.Error != nil {
		log.Error("Failed to suspend account", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to suspend account"})
	}

	prometheus.RecordSuspension(req.Duration)
	log.Info("Account suspended",
		zap.String("user_id", user.ID),
		zap.String("duration", req.Duration))

	response := echo.Map{"message": "Account suspended successfully", "duration": req.Duration}
	if state.Kind == suspension.SuspendedUntil {
		response["suspended_until"] = state.Until
	}
	return c.JSON(http.StatusOK, response)
}

// UnsuspendAccount lifts a suspension, the symmetric write back to the
// not-suspended state.
func UnsuspendAccount(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("unsuspend")

	user, ok := findUser(c)
	if !ok {
		return nil
	}

	cleared := suspension.State{Kind: suspension.NotSuspended}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Model(user).Updates(cleared.Columns()); result.Error != nil {
		log.Error("Failed to lift suspension", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to lift suspension"})
	}

	log.Info("Suspension lifted", zap.String("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Suspension lifted successfully"})
}

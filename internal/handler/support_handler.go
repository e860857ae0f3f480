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

// ListFeedbacks returns support messages with their author, newest first
func ListFeedbacks(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var feedbacks []model.ContactSupport
	result := database.GetDB().
		Preload("User").
		Order("created_at DESC").
		Find(&feedbacks)
	if result.Error != nil {
		log.Error("Failed to list feedbacks", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load feedbacks"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":     len(feedbacks),
		"feedbacks": feedbacks,
	})
}

// MessageUser sends a direct mail from the support team to an account
func MessageUser(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse support message", zap.Error(err))
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject and message are required"})
	}

	user, ok := findUser(c)
	if !ok {
		return nil
	}

	if err := mail.Send(user.Email, req.Subject, req.Message); err != nil {
		log.Error("Failed to send support mail",
			zap.String("user_id", user.ID),
			zap.Error(err))
		prometheus.RecordError("mail_error")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to deliver message"})
	}

	prometheus.RecordMail("support_message")
	log.Info("Support message sent", zap.String("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Message sent successfully"})
}

package handler

import (
	"fmt"
	"net/http"
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// VerifyLandlord promotes a pending landlord account to verified and
// closes its open verification record.
func VerifyLandlord(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("verify")

	user, ok := findUser(c)
	if !ok {
		return nil
	}

	if user.AccountType != model.AccountTypeLandlordUnverified {
		prometheus.RecordError("invalid_state")
		return c.JSON(http.StatusConflict, echo.Map{"error": "account is not pending verification"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Model(user).Update("account_type", model.AccountTypeLandlord); result.Error != nil {
		log.Error("Failed to verify landlord", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify landlord"})
	}

	// Close the open review record; the account_type above is the
	// authoritative state, so a missing record is not an error.
	closed := database.GetDB().
		Model(&model.VerifyAccount{}).
		Where("user_id = ? AND status = ?", user.ID, model.VerificationPending).
		Update("status", model.VerificationApproved)
	if closed.Error != nil {
		log.Warn("Failed to close pending verification record",
			zap.String("user_id", user.ID),
			zap.Error(closed.Error))
	}

	log.Info("Landlord verified", zap.String("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Landlord verified successfully"})
}

// RejectProof records a rejection of a landlord's proof-of-ownership and
// mails the rejection message to the landlord. The account stays pending.
func RejectProof(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("reject")

	var req struct {
		Message string `json:"message" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse rejection request", zap.Error(err))
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a rejection message is required"})
	}

	user, ok := findUser(c)
	if !ok {
		return nil
	}

	if user.AccountType != model.AccountTypeLandlordUnverified {
		prometheus.RecordError("invalid_state")
		return c.JSON(http.StatusConflict, echo.Map{"error": "account is not pending verification"})
	}

	proofID := ""
	if user.LandlordProofID != nil {
		proofID = *user.LandlordProofID
	}

	record := model.VerifyAccount{
		UserID:  user.ID,
		ProofID: proofID,
		Status:  model.VerificationRejected,
		Message: req.Message,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&record); result.Error != nil {
		log.Error("Failed to record proof rejection", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record rejection"})
	}

	// Notify the landlord; delivery failure doesn't undo the recorded rejection
	body := fmt.Sprintf("Your proof of ownership was rejected:\n\n%s\n\nYou can upload a new document and request review again.", req.Message)
	if err := mail.Send(user.Email, "Landlord verification rejected", body); err != nil {
		log.Warn("Failed to send rejection mail", zap.String("user_id", user.ID), zap.Error(err))
	} else {
		prometheus.RecordMail("rejection")
	}

	log.Info("Landlord proof rejected", zap.String("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Rejection recorded, status remains pending"})
}

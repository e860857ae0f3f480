package handler

import (
	"errors"
	"net/http"
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListLandlords returns landlord accounts. ?verified=false selects the
// pending (landlord_unverified) accounts, anything else the verified ones.
func ListLandlords(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("list_landlords")

	accountType := model.AccountTypeLandlord
	if c.QueryParam("verified") == "false" {
		accountType = model.AccountTypeLandlordUnverified
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var users []model.User
	result := database.GetDB().
		Where("account_type = ?", accountType).
		Order("created_at DESC").
		Find(&users)
	if result.Error != nil {
		log.Error("Failed to list landlords", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load landlords"})
	}

	return c.JSON(http.StatusOK, users)
}

// ListStudents returns accounts with a non-null student id
func ListStudents(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("list_students")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var users []model.User
	result := database.GetDB().
		Where("student_id IS NOT NULL").
		Order("created_at DESC").
		Find(&users)
	if result.Error != nil {
		log.Error("Failed to list students", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load students"})
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateAccount applies a partial profile update to an account
func UpdateAccount(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("update")

	// Pointer fields distinguish "absent" from "set to zero value"
	var req struct {
		Username  *string `json:"username"`
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Contact   *int64  `json:"contact"`
		School    *string `json:"school"`
		Avatar    *string `json:"avatar"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse account update", zap.Error(err))
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Firstname != nil {
		updates["firstname"] = *req.Firstname
	}
	if req.Lastname != nil {
		updates["lastname"] = *req.Lastname
	}
	if req.Contact != nil {
		updates["contact"] = *req.Contact
	}
	if req.School != nil {
		updates["school"] = *req.School
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if len(updates) == 0 {
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no updatable fields provided"})
	}

	user, ok := findUser(c)
	if !ok {
		return nil
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Model(user).Updates(updates); result.Error != nil {
		log.Error("Failed to update account", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update account"})
	}

	log.Info("Account updated", zap.String("user_id", user.ID))
	return c.JSON(http.StatusOK, user)
}

// DeleteAccount removes a platform account by id
func DeleteAccount(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.User{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete account", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete account"})
	}
	if result.RowsAffected == 0 {
		prometheus.RecordError("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
	}

	log.Info("Account deleted", zap.String("user_id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "Account deleted successfully"})
}

// findUser loads the account addressed by the :id route param. On
// failure it writes the error response itself and reports false.
func findUser(c echo.Context) (*model.User, bool) {
	log := logger.FromContext(c)

	var user model.User
	result := database.GetDB().First(&user, "id = ?", c.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			prometheus.RecordError("not_found")
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
			return nil, false
		}
		log.Error("Failed to load account", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load account"})
		return nil, false
	}

	return &user, true
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/internal/password"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/jwtutil"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	// Parse request
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	// Find admin in database - track DB operation duration
	defer prometheus.TrackDBOperation("query")(time.Now())
	var admin model.Admin
	result := database.GetDB().Where("email = ?", req.Email).First(&admin)
	if result.Error != nil {
		log.Error("Admin not found", zap.String("email", req.Email))
		prometheus.RecordError("admin_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	// Verify password
	err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password))
	if err != nil {
		log.Error("Invalid password", zap.String("email", req.Email))
		prometheus.RecordError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	// Generate JWT token
	token, err := jwtutil.GenerateToken(admin.Email, admin.ID, admin.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("Admin logged in",
		zap.String("email", admin.Email),
		zap.String("role", admin.Role))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"admin": map[string]interface{}{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

func Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	// Parse request
	var req struct {
		Firstname string `json:"firstname" validate:"required"`
		Lastname  string `json:"lastname" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required"`
		Role      string `json:"role" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		log.Error("Invalid registration data", zap.Error(err))
		prometheus.RecordError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "firstname, lastname, email, password and role are required"})
	}

	// Strength rules first: the first violated rule's message is returned
	if msg := password.StrengthViolation(req.Password); msg != "" {
		log.Error("Weak password rejected", zap.String("email", req.Email))
		prometheus.RecordError("weak_password")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	// Then the breach corpus
	breached, err := breach.Check(c.Request().Context(), req.Password)
	if err != nil {
		// Fail-closed policy: the check could not answer, reject the signup
		log.Error("Breach check unavailable", zap.Error(err))
		prometheus.RecordBreachCheck("unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "password could not be verified, try again later"})
	}
	if breached {
		log.Error("Breached password rejected", zap.String("email", req.Email))
		prometheus.RecordBreachCheck("breached")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "this password has appeared in a data breach, choose another one"})
	}
	prometheus.RecordBreachCheck("clean")

	// Check if admin already exists - track DB query
	defer prometheus.TrackDBOperation("query")(time.Now())
	var existing model.Admin
	result := database.GetDB().Where("email = ?", req.Email).First(&existing)
	if result.Error == nil {
		log.Error("Admin already exists", zap.String("email", req.Email))
		prometheus.RecordError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Error("Failed to check existing admin", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	// Create new admin
	admin := model.Admin{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Role:      req.Role,
		Password:  string(hashedPassword),
	}

	// Save to database - track DB insert operation
	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&admin); result.Error != nil {
		log.Error("Failed to create admin", zap.Error(result.Error))
		prometheus.RecordError("admin_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("Admin registered", zap.String("email", admin.Email), zap.String("role", admin.Role))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Admin registered successfully",
		"admin": map[string]interface{}{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// ListAdmins returns the dashboard team, newest first
func ListAdmins(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var admins []model.Admin
	if result := database.GetDB().Order("created_at DESC").Find(&admins); result.Error != nil {
		log.Error("Failed to list admins", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load admins"})
	}

	return c.JSON(http.StatusOK, admins)
}

func MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"stayadmin-service/internal/model"
	"stayadmin-service/internal/status"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// listingResponse is a listing with its derived lifecycle status attached
type listingResponse struct {
	model.Post
	Status status.Badge `json:"status"`
}

// ListListings returns all listings with their owner, requests and derived
// status. Supports ?status= (available/pending/acknowledged/occupied) and
// ?q= (title or owner name) filtering.
func ListListings(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("list")

	statusFilter := strings.ToLower(c.QueryParam("status"))
	search := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))

	defer prometheus.TrackDBOperation("query")(time.Now())
	var posts []model.Post
	result := database.GetDB().
		Preload("Requests").
		Preload("User").
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		log.Error("Failed to load listings", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load listings"})
	}

	listings := make([]listingResponse, 0, len(posts))
	for _, post := range posts {
		badge := status.ForRequests(post.Requests)

		if statusFilter != "" && statusFilter != "all" && strings.ToLower(badge.Text) != statusFilter {
			continue
		}

		if search != "" && !matchesSearch(&post, search) {
			continue
		}

		listings = append(listings, listingResponse{Post: post, Status: badge})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(listings),
		"listings": listings,
	})
}

// GetListing returns a single listing with owner, requests and derived status
func GetListing(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("get")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var post model.Post
	result := database.GetDB().
		Preload("Requests").
		Preload("User").
		First(&post, "id = ?", c.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			prometheus.RecordError("not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
		}
		log.Error("Failed to load listing", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load listing"})
	}

	return c.JSON(http.StatusOK, listingResponse{Post: post, Status: status.ForRequests(post.Requests)})
}

// DeleteListing removes a listing by id
func DeleteListing(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Post{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete listing", zap.Error(result.Error))
		prometheus.RecordError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete listing"})
	}
	if result.RowsAffected == 0 {
		prometheus.RecordError("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
	}

	log.Info("Listing deleted", zap.String("listing_id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "Listing deleted successfully"})
}

func matchesSearch(post *model.Post, search string) bool {
	if strings.Contains(strings.ToLower(post.Title), search) {
		return true
	}
	if post.User != nil {
		if strings.Contains(strings.ToLower(post.User.Firstname), search) ||
			strings.Contains(strings.ToLower(post.User.Lastname), search) {
			return true
		}
	}
	return false
}

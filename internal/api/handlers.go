package api

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"housinglake/server/internal/database"
	"housinglake/server/internal/models"
)

// Searcher runs one normalization pass for a set of criteria.
type Searcher interface {
	Search(params models.SearchParams) []models.StandardizedProperty
}

type Handler struct {
	searcher Searcher
	db       *database.Database
	logger   *logrus.Logger
}

type AlertRequest struct {
	ChatID       string   `json:"chat_id" binding:"required"`
	Source       string   `json:"source"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	Bedrooms     *int     `json:"bedrooms"`
	PropertyType string   `json:"property_type"`
	BerRating    string   `json:"ber_rating"`
	Locations    []string `json:"locations"`
}

func NewHandler(searcher Searcher, db *database.Database, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		searcher: searcher,
		db:       db,
		logger:   logger,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) SearchRentals(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.WithError(err).Error("Failed to parse search params")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters"})
		return
	}

	if params.Source != "" {
		if _, ok := models.ParseSource(params.Source); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown source: " + params.Source})
			return
		}
	}

	properties := h.searcher.Search(params)
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse alert request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	if req.Source != "" {
		if _, ok := models.ParseSource(req.Source); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown source: " + req.Source})
			return
		}
	}

	sub := models.AlertSubscription{
		ChatID: req.ChatID,
		Criteria: models.SearchParams{
			Source:       req.Source,
			MinPrice:     req.MinPrice,
			MaxPrice:     req.MaxPrice,
			Bedrooms:     req.Bedrooms,
			PropertyType: req.PropertyType,
			BerRating:    req.BerRating,
		},
		Locations: req.Locations,
	}

	if err := h.db.CreateSubscription(&sub); err != nil {
		h.logger.WithError(err).Error("Failed to create subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListAlerts(c *gin.Context) {
	subs, err := h.db.ListSubscriptions()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list subscriptions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *Handler) DeleteAlert(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	if err := h.db.DeleteSubscription(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete subscription")
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

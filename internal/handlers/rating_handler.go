package handlers

import (
	"net/http"

	"cargolink_backend/internal/middleware"
	"cargolink_backend/internal/services"
	"cargolink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/ratings")
	{
		public.GET("/users/:userId/summary", h.GetSummary)
		public.GET("/users/:userId", h.ListForUser)
	}

	// Protected routes
	protected := r.Group("/ratings")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Submit)
	}
}

// --- Public handlers ---

func (h *RatingHandler) GetSummary(c *gin.Context) {
	summary, err := h.ratingService.Summary(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *RatingHandler) ListForUser(c *gin.Context) {
	ratings, err := h.ratingService.ListForUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"total":   len(ratings),
	})
}

// --- Protected handlers ---

func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rating, err := h.ratingService.Submit(middleware.CurrentIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

package handlers

import (
	"net/http"

	"cargolink_backend/internal/middleware"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/services"
	"cargolink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
	browseService  services.BrowseService
}

func NewListingHandler(
	base *BaseHandler,
	listingService services.ListingService,
	browseService services.BrowseService,
) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
		browseService:  browseService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/listings", h.Browse)

	// Protected routes - owner
	listings := r.Group("/listings")
	listings.Use(middleware.AuthMiddleware())
	{
		listings.POST("", h.Submit)
		listings.GET("/my", h.MyListings)
		listings.DELETE("/:listingId", h.Delete)
	}

	// Admin routes
	admin := r.Group("/admin/listings")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/pending", h.PendingQueue)
		admin.PUT("/:listingId/approve", h.Approve)
		admin.PUT("/:listingId/reject", h.Reject)
	}
}

// --- Public handlers ---

// Browse возвращает одобренные объявления, обогащенные продавцом,
// после фильтрации по критериям из query-параметров.
func (h *ListingHandler) Browse(c *gin.Context) {
	var criteria dto.BrowseCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	listings, err := h.browseService.Browse(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"total":    len(listings),
	})
}

// --- Owner handlers ---

func (h *ListingHandler) Submit(c *gin.Context) {
	var req dto.CreateListingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	listing, err := h.listingService.Submit(middleware.CurrentIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) MyListings(c *gin.Context) {
	resp, err := h.listingService.MyListings(middleware.CurrentIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	listingID := c.Param("listingId")

	if err := h.listingService.Delete(middleware.CurrentIdentity(c), listingID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- Admin handlers ---

func (h *ListingHandler) PendingQueue(c *gin.Context) {
	listings, err := h.listingService.ListByStatus(models.ListingStatusPending)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"total":    len(listings),
	})
}

func (h *ListingHandler) Approve(c *gin.Context) {
	listing, err := h.listingService.Approve(middleware.CurrentIdentity(c), c.Param("listingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Reject(c *gin.Context) {
	listing, err := h.listingService.Reject(middleware.CurrentIdentity(c), c.Param("listingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

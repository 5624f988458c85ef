package handlers

import (
	"net/http"

	"cargolink_backend/internal/middleware"
	"cargolink_backend/internal/services"
	"cargolink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public profile page
	r.GET("/profiles/:userId", h.PublicProfile)

	// Own profile
	me := r.Group("/profiles/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetOwn)
		me.PUT("", h.UpdateOwn)
	}
}

func (h *ProfileHandler) PublicProfile(c *gin.Context) {
	profile, err := h.profileService.PublicProfile(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwn(c *gin.Context) {
	profile, err := h.profileService.GetOwn(middleware.CurrentIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateOwn(middleware.CurrentIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

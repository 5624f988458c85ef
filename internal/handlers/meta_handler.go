package handlers

import (
	"net/http"

	"cargolink_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// MetaHandler отдает справочники маршрута для форм фронтенда
type MetaHandler struct {
	*BaseHandler
}

func NewMetaHandler(base *BaseHandler) *MetaHandler {
	return &MetaHandler{BaseHandler: base}
}

func (h *MetaHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/meta/reference", h.Reference)
}

func (h *MetaHandler) Reference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chinese_cities":  models.ChineseCities,
		"algerian_cities": models.AlgerianCities,
		"chinese_ports":   models.ChinesePorts,
		"algerian_ports":  models.AlgerianPorts,
		"car_types":       models.CarTypes,
	})
}

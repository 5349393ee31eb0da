package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbancare/urbancare-api/internal/modules/stat/service"
	"github.com/urbancare/urbancare-api/pkg/response"
)

type StatHandler struct {
	service service.StatService
}

func NewStatHandler(service service.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) GetOverview(c *gin.Context) {
	stats, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbancare/urbancare-api/internal/modules/attachment/service"
	"github.com/urbancare/urbancare-api/pkg/response"
)

type AttachmentHandler struct {
	service service.AttachmentService
}

func NewAttachmentHandler(service service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func (h *AttachmentHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"url":     url,
	})
}

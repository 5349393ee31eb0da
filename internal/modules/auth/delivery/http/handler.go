package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbancare/urbancare-api/internal/modules/auth/dto"
	"github.com/urbancare/urbancare-api/internal/modules/auth/service"
	"github.com/urbancare/urbancare-api/pkg/apperror"
	"github.com/urbancare/urbancare-api/pkg/response"
	"github.com/urbancare/urbancare-api/pkg/validator"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "account created successfully",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	// The rate limiter reads the body first; ShouldBindBodyWithJSON shares
	// the cached bytes instead of re-reading a drained request body.
	var req dto.LoginRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req dto.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	profile, err := h.service.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists": true,
		"user":   profile,
	})
}

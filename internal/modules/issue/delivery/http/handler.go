package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urbancare/urbancare-api/internal/modules/issue/dto"
	"github.com/urbancare/urbancare-api/internal/modules/issue/service"
	"github.com/urbancare/urbancare-api/pkg/response"
	"github.com/urbancare/urbancare-api/pkg/validator"
)

type IssueHandler struct {
	service service.IssueService
}

func NewIssueHandler(service service.IssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	issue, err := h.service.CreateIssue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"issue":   issue,
	})
}

func (h *IssueHandler) ListIssues(c *gin.Context) {
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issues, err := h.service.ListIssues(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"issues":  issues,
	})
}

func (h *IssueHandler) GetIssue(c *gin.Context) {
	id, ok := h.issueID(c)
	if !ok {
		return
	}

	issue, err := h.service.GetIssue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"issue":   issue,
	})
}

func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	id, ok := h.issueID(c)
	if !ok {
		return
	}

	var req dto.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	issue, err := h.service.UpdateIssue(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"issue":   issue,
	})
}

func (h *IssueHandler) AppendUpdate(c *gin.Context) {
	id, ok := h.issueID(c)
	if !ok {
		return
	}

	var req dto.AddUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	update, err := h.service.AppendUpdate(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"update":  update,
	})
}

func (h *IssueHandler) ListUpdates(c *gin.Context) {
	id, ok := h.issueID(c)
	if !ok {
		return
	}

	updates, err := h.service.ListUpdates(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updates": updates,
	})
}

func (h *IssueHandler) issueID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid issue id"})
		return uuid.Nil, false
	}
	return id, true
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rms/internal/errors"
	"rms/internal/services"
)

// AIToolHandler handles AI tool catalog requests.
type AIToolHandler struct {
	toolService  services.AIToolServicer
	auditService services.AuditServicer
}

// NewAIToolHandler creates a new AIToolHandler.
func NewAIToolHandler(toolService services.AIToolServicer, auditService services.AuditServicer) *AIToolHandler {
	return &AIToolHandler{toolService: toolService, auditService: auditService}
}

// CreateAIToolRequest represents the request payload for creating a tool.
type CreateAIToolRequest struct {
	Name         string `json:"name" binding:"required"`
	MonthlyPrice string `json:"monthlyPrice" binding:"required"`
}

// UpdateAIToolRequest represents the request payload for updating a tool.
// Only supplied fields are updated.
type UpdateAIToolRequest struct {
	Name         string `json:"name"`
	MonthlyPrice string `json:"monthlyPrice"`
}

// GetAllTools handles listing the tool catalog.
// @Summary     List AI tools
// @Description Get all AI tools, most recently created first
// @Tags        ai-tools
// @Produce     json
// @Success     200 {object} Response{data=[]models.AITool} "AI tools"
// @Failure     500 {object} Response "Server error"
// @Router      /ai-tools [get]
func (h *AIToolHandler) GetAllTools(c *gin.Context) {
	tools, err := h.toolService.GetAllTools()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, tools, "AI tools fetched successfully")
}

// GetToolByID handles retrieving a single tool.
// @Summary     Get AI tool by ID
// @Description Get a single AI tool by its id
// @Tags        ai-tools
// @Produce     json
// @Param       id path string true "Tool ID"
// @Success     200 {object} Response{data=models.AITool} "AI tool"
// @Failure     404 {object} Response "AI tool not found"
// @Failure     500 {object} Response "Server error"
// @Router      /ai-tools/{id} [get]
func (h *AIToolHandler) GetToolByID(c *gin.Context) {
	tool, err := h.toolService.GetToolByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, tool, "AI tool fetched successfully")
}

// CreateTool handles adding a tool to the catalog.
// @Summary     Create AI tool
// @Description Add a new AI tool to the catalog
// @Tags        ai-tools
// @Accept      json
// @Produce     json
// @Param       request body CreateAIToolRequest true "Tool details"
// @Success     201 {object} Response{data=models.AITool} "Tool created"
// @Failure     400 {object} Response "Invalid input"
// @Failure     500 {object} Response "Server error"
// @Router      /ai-tools [post]
func (h *AIToolHandler) CreateTool(c *gin.Context) {
	var req CreateAIToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name and monthly price are required"))
		return
	}

	tool, err := h.toolService.CreateTool(req.Name, req.MonthlyPrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_AI_TOOL", "ai_tool", tool.ID, c.ClientIP(),
		map[string]interface{}{"name": tool.Name, "monthlyPrice": tool.MonthlyPrice})

	respondSuccess(c, http.StatusCreated, tool, "AI tool created successfully")
}

// UpdateTool handles updating an existing tool.
// @Summary     Update AI tool
// @Description Update an existing AI tool's name and/or monthly price
// @Tags        ai-tools
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Tool ID"
// @Param       request body UpdateAIToolRequest true "Updated tool details"
// @Success     200 {object} Response{data=models.AITool} "Updated tool"
// @Failure     400 {object} Response "Invalid input"
// @Failure     404 {object} Response "AI tool not found"
// @Failure     500 {object} Response "Server error"
// @Router      /ai-tools/{id} [put]
func (h *AIToolHandler) UpdateTool(c *gin.Context) {
	var req UpdateAIToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tool, err := h.toolService.UpdateTool(c.Param("id"), req.Name, req.MonthlyPrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_AI_TOOL", "ai_tool", tool.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "monthlyPrice": req.MonthlyPrice})

	respondSuccess(c, http.StatusOK, tool, "AI tool updated successfully")
}

// DeleteTool handles removing a tool from the catalog.
// @Summary     Delete AI tool
// @Description Remove an AI tool from the catalog; existing allocations keep their snapshot
// @Tags        ai-tools
// @Produce     json
// @Param       id path string true "Tool ID"
// @Success     200 {object} Response "Tool deleted"
// @Failure     404 {object} Response "AI tool not found"
// @Failure     500 {object} Response "Server error"
// @Router      /ai-tools/{id} [delete]
func (h *AIToolHandler) DeleteTool(c *gin.Context) {
	id := c.Param("id")
	if err := h.toolService.DeleteTool(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_AI_TOOL", "ai_tool", id, c.ClientIP(), nil)

	respondSuccess(c, http.StatusOK, nil, "AI tool deleted successfully")
}

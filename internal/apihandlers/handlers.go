package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"promptvault/internal/app"
	"promptvault/internal/models"
	"promptvault/internal/store"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

type CategorizeRequest struct {
	Content string `json:"content"`
}

type CreatePromptRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
}

// CategorizeHandler suggests a summary and categories for prompt content.
// Already-used categories are passed to the annotator as a hint; annotation
// itself never fails, so the only error paths here are request validation
// and the store.
func (h *APIHandler) CategorizeHandler(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		BadRequest(c, "content is required")
		return
	}

	existing, err := h.App.PromptStore.ListDistinctCategories(c.Request.Context())
	if err != nil {
		// The hint is optional context; annotate without it rather than fail.
		log.Warnf("Failed to list existing categories for hint: %v", err)
		existing = nil
	}

	suggestion := h.App.Annotator.CategorizeAndSummarize(c.Request.Context(), req.Content, existing)
	c.JSON(http.StatusOK, suggestion)
}

// CreatePromptHandler stores a prompt, generating its title and tags first.
func (h *APIHandler) CreatePromptHandler(c *gin.Context) {
	var req CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		BadRequest(c, "content is required")
		return
	}

	titleTags := h.App.Annotator.GenerateTitleAndTags(c.Request.Context(), req.Content)

	created, err := h.App.PromptStore.CreatePrompt(c.Request.Context(), &models.Prompt{
		Title:    titleTags.Title,
		Category: req.Category,
		Content:  req.Content,
		Tags:     titleTags.Tags,
		Summary:  req.Summary,
	})
	if err != nil {
		Internal(c, fmt.Sprintf("CreatePromptHandler: failed to store prompt: %v", err))
		return
	}

	log.Infof("API CreatePrompt: prompt_id=%d, title=%q, category=%q", created.ID, created.Title, created.Category)
	c.JSON(http.StatusCreated, created)
}

func (h *APIHandler) ListPromptsHandler(c *gin.Context) {
	prompts, err := h.App.PromptStore.ListPrompts(c.Request.Context())
	if err != nil {
		Internal(c, fmt.Sprintf("ListPromptsHandler: failed to list prompts: %v", err))
		return
	}
	if prompts == nil {
		prompts = []*models.Prompt{} // Serialize as [] rather than null
	}
	c.JSON(http.StatusOK, prompts)
}

func (h *APIHandler) GetPromptHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid prompt id: "+c.Param("id"))
		return
	}

	prompt, err := h.App.PromptStore.GetPrompt(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, fmt.Sprintf("prompt %d not found", id))
		return
	}
	if err != nil {
		Internal(c, fmt.Sprintf("GetPromptHandler: failed to get prompt: %v", err))
		return
	}
	c.JSON(http.StatusOK, prompt)
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kingkongandy/limelight-post/internal/generator"
	"github.com/kingkongandy/limelight-post/internal/model"
	"github.com/kingkongandy/limelight-post/pkg/llm"

	"github.com/gin-gonic/gin"
)

const (
	minBatchCount = 1
	maxBatchCount = 10
)

type StoryGenerator interface {
	GenerateBatch(vertical model.Vertical, count int, customPrompt string, mock bool) ([]model.Story, error)
	GenerateDaily(prompts map[model.Vertical]string, perVertical int) ([]model.Story, int, error)
}

type GenerateHandler struct {
	generator StoryGenerator
	polisher  llm.Polisher
}

// NewGenerateHandler wires the generation endpoints. polisher may be nil
// when no completion credential is configured.
func NewGenerateHandler(gen StoryGenerator, polisher llm.Polisher) *GenerateHandler {
	return &GenerateHandler{generator: gen, polisher: polisher}
}

func (h *GenerateHandler) GenerateStories(c *gin.Context) {
	var req GenerateStoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	vertical := model.Vertical(req.Vertical)
	if !vertical.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vertical"})
		return
	}

	count := req.Count
	if count < minBatchCount {
		count = minBatchCount
	}
	if count > maxBatchCount {
		count = maxBatchCount
	}

	mock := generator.ParseMockFlag(req.UseMockMode)
	slog.Info("generation request", "vertical", vertical, "count", count, "mock", mock, "custom_prompt", req.CustomPrompt)

	stories, err := h.generator.GenerateBatch(vertical, count, req.CustomPrompt, mock)
	if err != nil {
		slog.Error("error generating stories", "vertical", vertical, "error", err)
		if errors.Is(err, generator.ErrNoComposer) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate stories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stories)
}

func (h *GenerateHandler) GenerateDailyStories(c *gin.Context) {
	var req GenerateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.StoriesPerVertical < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storiesPerVertical must be positive"})
		return
	}

	prompts := make(map[model.Vertical]string, len(req.VerticalPrompts))
	for v, p := range req.VerticalPrompts {
		prompts[model.Vertical(v)] = p
	}

	stories, failed, err := h.generator.GenerateDaily(prompts, req.StoriesPerVertical)
	if err != nil {
		slog.Error("error generating daily stories", "error", err)
		if errors.Is(err, generator.ErrNoComposer) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate daily stories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, DailyStoriesResponse{
		Stories:   stories,
		Requested: req.StoriesPerVertical * len(model.Verticals),
		Failed:    failed,
	})
}

func (h *GenerateHandler) PolishStory(c *gin.Context) {
	var req PolishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if h.polisher == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
		return
	}

	slog.Info("polishing story", "title", req.Title)

	polished, err := h.polisher.Polish(llm.PolishInput{
		Title:    req.Title,
		Content:  req.Content,
		Vertical: req.Vertical,
	})
	if err != nil {
		slog.Error("error polishing story", "title", req.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to polish story", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PolishResponse{PolishedContent: polished})
}

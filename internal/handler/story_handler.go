package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kingkongandy/limelight-post/internal/model"

	"github.com/gin-gonic/gin"
)

type StoryStore interface {
	SaveStory(story *model.Story) error
	GetStory(id string) (*model.Story, error)
	ListStories(vertical model.Vertical, limit int) ([]model.Story, error)
}

type ImageResolver interface {
	Resolve(query string) string
}

type StoryHandler struct {
	repository StoryStore
	images     ImageResolver
}

func NewStoryHandler(repository StoryStore, images ImageResolver) *StoryHandler {
	return &StoryHandler{repository: repository, images: images}
}

// SaveManualStory completes a hand-written story with server-assigned
// metadata and persists it.
func (h *StoryHandler) SaveManualStory(c *gin.Context) {
	var story model.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if story.Title == "" || story.Excerpt == "" || story.Content == "" || story.Vertical == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !story.Vertical.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vertical"})
		return
	}

	story.ID = model.NewStoryID("manual")
	story.Date = time.Now().Format("2006-01-02")
	story.AIGenerated = false
	story.Source = model.SourceManual
	if story.Author == "" {
		story.Author = model.AuthorEditor
	}
	if story.ImageURL == "" {
		words := strings.Fields(story.Title)
		if len(words) > 3 {
			words = words[:3]
		}
		story.ImageURL = h.images.Resolve(strings.Join(words, " "))
	}
	if len(story.Tags) == 0 {
		story.Tags = []string{"Breaking News"}
	}
	if len(story.Tags) > 5 {
		story.Tags = story.Tags[:5]
	}

	if err := h.repository.SaveStory(&story); err != nil {
		slog.Error("error saving manual story", "title", story.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save manual story", "details": err.Error()})
		return
	}

	slog.Info("saved manual story", "id", story.ID, "title", story.Title)
	c.JSON(http.StatusOK, story)
}

func (h *StoryHandler) GetStories(c *gin.Context) {
	limit := getQueryLimit(c)

	var vertical model.Vertical
	if v := c.Query("vertical"); v != "" {
		vertical = model.Vertical(v)
		if !vertical.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vertical"})
			return
		}
	}

	stories, err := h.repository.ListStories(vertical, limit)
	if err != nil {
		slog.Error("error fetching stories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	if stories == nil {
		stories = []model.Story{}
	}

	c.JSON(http.StatusOK, StoriesResponse{Stories: stories, Limit: limit})
}

func (h *StoryHandler) GetStory(c *gin.Context) {
	id := c.Param("id")

	story, err := h.repository.GetStory(id)
	if err != nil {
		slog.Error("error fetching story", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	if story == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	c.JSON(http.StatusOK, story)
}

func (h *StoryHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.ListStories("", 1)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store":  "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

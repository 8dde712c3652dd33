package handler

import (
	"log/slog"
	"net/http"

	"github.com/kingkongandy/limelight-post/internal/model"

	"github.com/gin-gonic/gin"
)

type ScheduleStore interface {
	GetSettings() (model.ScheduleSettings, error)
	SaveSettings(settings model.ScheduleSettings) error
}

type ScheduleHandler struct {
	repository ScheduleStore
}

func NewScheduleHandler(repository ScheduleStore) *ScheduleHandler {
	return &ScheduleHandler{repository: repository}
}

func (h *ScheduleHandler) GetScheduleSettings(c *gin.Context) {
	settings, err := h.repository.GetSettings()
	if err != nil {
		slog.Error("error fetching schedule settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ScheduleHandler) UpdateScheduleSettings(c *gin.Context) {
	var settings model.ScheduleSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if settings.StoriesPerVertical < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storiesPerVertical must be positive"})
		return
	}

	if err := h.repository.SaveSettings(settings); err != nil {
		slog.Error("error updating schedule settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	slog.Info("schedule settings updated", "enabled", settings.Enabled, "time", settings.Time, "stories_per_vertical", settings.StoriesPerVertical)
	c.JSON(http.StatusOK, ScheduleSettingsResponse{Success: true, Settings: settings})
}

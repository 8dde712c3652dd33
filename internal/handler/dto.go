package handler

import "github.com/kingkongandy/limelight-post/internal/model"

type GenerateStoriesRequest struct {
	Vertical     string `json:"vertical"`
	Count        int    `json:"count"`
	CustomPrompt string `json:"customPrompt"`
	// Loosely typed on purpose: callers have been observed sending true,
	// "true", and 1. Normalized at the boundary, never used raw.
	UseMockMode any `json:"useMockMode"`
}

type GenerateDailyRequest struct {
	VerticalPrompts    map[string]string `json:"verticalPrompts"`
	StoriesPerVertical int               `json:"storiesPerVertical"`
}

type DailyStoriesResponse struct {
	Stories   []model.Story `json:"stories"`
	Requested int           `json:"requested"`
	Failed    int           `json:"failed"`
}

type StoriesResponse struct {
	Stories []model.Story `json:"stories"`
	Limit   int           `json:"limit"`
}

type PolishRequest struct {
	Content  string `json:"content"`
	Title    string `json:"title"`
	Vertical string `json:"vertical"`
}

type PolishResponse struct {
	PolishedContent string `json:"polishedContent"`
}

type ScheduleSettingsResponse struct {
	Success  bool                   `json:"success"`
	Settings model.ScheduleSettings `json:"settings"`
}

package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kingkongandy/limelight-post/db"
	"github.com/kingkongandy/limelight-post/internal/generator"
	"github.com/kingkongandy/limelight-post/internal/model"
	"github.com/kingkongandy/limelight-post/internal/repository"
	"github.com/kingkongandy/limelight-post/pkg/images"
	"github.com/kingkongandy/limelight-post/pkg/llm"
	"github.com/kingkongandy/limelight-post/pkg/news"

	"github.com/joho/godotenv"
)

// One-shot daily batch runner. Scheduling itself lives outside the repo
// (cron, CI job, manual run); this binary just honors the stored settings.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	settingsRepo := repository.NewSettingsRepository(db.Redis)
	storyRepo := repository.NewStoryRepository(db.Redis)

	settings, err := settingsRepo.GetSettings()
	if err != nil {
		log.Fatalf("error reading schedule settings: %v", err)
	}

	if !settings.Enabled {
		slog.Info("scheduled generation is disabled, exiting")
		return
	}

	var composer llm.Composer
	switch {
	case os.Getenv("LLM_PROVIDER") == "anthropic" && os.Getenv("ANTHROPIC_API_KEY") != "":
		composer = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	case os.Getenv("OPENAI_API_KEY") != "":
		composer = llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	default:
		log.Fatalf("a completion API key is required for scheduled generation")
	}

	var providers []images.ImageSearcher
	if key := os.Getenv("GETTY_API_KEY"); key != "" {
		providers = append(providers, images.NewGettyClient(key))
	}
	if key := os.Getenv("UNSPLASH_ACCESS_KEY"); key != "" {
		providers = append(providers, images.NewUnsplashClient(key))
	}

	gen := generator.NewGenerator(
		composer,
		news.NewTavilyClient(os.Getenv("TAVILY_API_KEY")),
		images.NewResolver(providers...),
	)

	slog.Info("starting daily generation", "stories_per_vertical", settings.StoriesPerVertical)

	stories, failed, err := gen.GenerateDaily(map[model.Vertical]string{}, settings.StoriesPerVertical)
	if err != nil {
		log.Fatalf("error generating daily stories: %v", err)
	}

	var saved int
	for i := range stories {
		if err := storyRepo.SaveStory(&stories[i]); err != nil {
			slog.Error("error saving story", "id", stories[i].ID, "error", err)
			continue
		}
		saved++
	}

	lastRun := time.Now().Format(time.RFC3339)
	settings.LastRun = &lastRun
	if err := settingsRepo.SaveSettings(settings); err != nil {
		slog.Error("error updating lastRun", "error", err)
	}

	slog.Info("daily run complete", "generated", len(stories), "failed", failed, "saved", saved)
}

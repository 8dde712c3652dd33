package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/kingkongandy/limelight-post/db"
	"github.com/kingkongandy/limelight-post/internal/generator"
	"github.com/kingkongandy/limelight-post/internal/handler"
	"github.com/kingkongandy/limelight-post/internal/repository"
	"github.com/kingkongandy/limelight-post/pkg/images"
	"github.com/kingkongandy/limelight-post/pkg/llm"
	"github.com/kingkongandy/limelight-post/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	storyRepo := repository.NewStoryRepository(db.Redis)
	settingsRepo := repository.NewSettingsRepository(db.Redis)

	resolver := buildImageResolver()
	searcher := news.NewTavilyClient(os.Getenv("TAVILY_API_KEY"))
	composer, polisher := buildCompletionClients()

	gen := generator.NewGenerator(composer, searcher, resolver)

	storyHandler := handler.NewStoryHandler(storyRepo, resolver)
	generateHandler := handler.NewGenerateHandler(gen, polisher)
	scheduleHandler := handler.NewScheduleHandler(settingsRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.POST("/generate-stories", generateHandler.GenerateStories)
	r.POST("/generate-daily-stories", generateHandler.GenerateDailyStories)
	r.POST("/ai-polish", generateHandler.PolishStory)
	r.POST("/save-manual-story", storyHandler.SaveManualStory)
	r.GET("/stories", storyHandler.GetStories)
	r.GET("/stories/:id", storyHandler.GetStory)
	r.GET("/schedule-settings", scheduleHandler.GetScheduleSettings)
	r.POST("/schedule-settings", scheduleHandler.UpdateScheduleSettings)
	r.GET("/health", storyHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// buildImageResolver wires only the providers that have credentials; the
// resolver's placeholder tier keeps working with none.
func buildImageResolver() *images.Resolver {
	var providers []images.ImageSearcher
	if key := os.Getenv("GETTY_API_KEY"); key != "" {
		providers = append(providers, images.NewGettyClient(key))
	}
	if key := os.Getenv("UNSPLASH_ACCESS_KEY"); key != "" {
		providers = append(providers, images.NewUnsplashClient(key))
	}
	return images.NewResolver(providers...)
}

// buildCompletionClients picks the completion provider from the environment.
// A nil composer disables AI generation but leaves mock mode available.
func buildCompletionClients() (llm.Composer, llm.Polisher) {
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			client := llm.NewAnthropicClient(key)
			return client, client
		}
		slog.Warn("LLM_PROVIDER=anthropic but ANTHROPIC_API_KEY is not set")
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client := llm.NewOpenAIClient(key)
		return client, client
	}

	slog.Warn("no completion API key configured, AI generation disabled")
	return nil, nil
}

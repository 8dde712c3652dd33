package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	tavilyEndpoint   = "https://api.tavily.com/search"
	tavilyMaxResults = 5
	tavilyWindowDays = 3
)

// verticalKeywords sharpens the raw query toward each vertical's beat.
var verticalKeywords = map[string]string{
	"arts-music":      "music artist entertainment news",
	"fashion-culture": "fashion designer style news",
	"sports-leisure":  "sports athlete fitness news",
	"business-news":   "tech business startup entrepreneur news",
}

type TavilyClient struct {
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

func NewTavilyClient(apiKey string) *TavilyClient {
	return &TavilyClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

func (c *TavilyClient) Name() string {
	return "Tavily"
}

// Search queries Tavily for recent coverage of the topic, restricted to the
// last few days. Missing credentials, upstream errors, and empty result sets
// all degrade to an empty Grounding rather than failing the caller.
func (c *TavilyClient) Search(query, vertical string) (Grounding, error) {
	if c.apiKey == "" {
		slog.Info("no search API key configured, composing without grounding")
		return Grounding{}, nil
	}

	searchQuery := buildSearchQuery(query, vertical, c.now())

	body, err := json.Marshal(tavilyRequest{
		APIKey:        c.apiKey,
		Query:         searchQuery,
		SearchDepth:   "advanced",
		IncludeAnswer: true,
		MaxResults:    tavilyMaxResults,
		Days:          tavilyWindowDays,
	})
	if err != nil {
		return Grounding{}, fmt.Errorf("tavily request: %w", err)
	}

	resp, err := c.httpClient.Post(tavilyEndpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return Grounding{}, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("search API returned non-OK status, composing without grounding", "status", resp.StatusCode)
		return Grounding{}, nil
	}

	var raw tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Grounding{}, fmt.Errorf("tavily decode: %w", err)
	}

	if len(raw.Results) == 0 {
		slog.Info("no recent search results", "query", searchQuery)
		return Grounding{}, nil
	}

	sources := make([]Source, 0, len(raw.Results))
	blocks := make([]string, 0, len(raw.Results))
	for i, r := range raw.Results {
		sources = append(sources, Source{Title: r.Title, URL: r.URL})
		blocks = append(blocks, fmt.Sprintf(
			"[Source %d] %s\n%s\nURL: %s\nDate: RECENT (within last %d days)\n",
			i+1, r.Title, r.Content, r.URL, tavilyWindowDays,
		))
	}

	return Grounding{
		Context: strings.Join(blocks, "\n---\n"),
		Sources: sources,
	}, nil
}

// buildSearchQuery appends vertical keywords and a recency phrase anchored to
// the current month, derived from the clock at call time.
func buildSearchQuery(query, vertical string, now time.Time) string {
	parts := []string{}
	if query != "" {
		parts = append(parts, query)
	}
	if kw, ok := verticalKeywords[vertical]; ok {
		parts = append(parts, kw)
	}
	parts = append(parts, "latest breaking news "+now.Format("January 2006"))
	return strings.Join(parts, " ")
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
	Days          int    `json:"days"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kingkongandy/limelight-post/internal/model"
	"github.com/kingkongandy/limelight-post/pkg/llm"
	"github.com/kingkongandy/limelight-post/pkg/news"
)

var (
	ErrInvalidVertical = errors.New("invalid vertical")
	ErrNoComposer      = errors.New("completion API key not configured")
)

type ImageResolver interface {
	Resolve(query string) string
}

// Generator produces story batches. Generation is strictly sequential, one
// story at a time, with fixed pauses between completion calls to stay under
// third-party rate limits.
type Generator struct {
	composer llm.Composer
	searcher news.Searcher
	images   ImageResolver

	batchDelay time.Duration
	dailyDelay time.Duration
}

// NewGenerator wires the orchestrator. composer may be nil when no completion
// credential is configured; AI-mode requests then fail with ErrNoComposer
// while mock mode keeps working.
func NewGenerator(composer llm.Composer, searcher news.Searcher, images ImageResolver) *Generator {
	return &Generator{
		composer:   composer,
		searcher:   searcher,
		images:     images,
		batchDelay: 500 * time.Millisecond,
		dailyDelay: time.Second,
	}
}

// GenerateBatch produces count stories for one vertical, via the mock
// synthesizer or the AI composer. In AI mode any single compose failure
// aborts the whole request.
func (g *Generator) GenerateBatch(vertical model.Vertical, count int, customPrompt string, mock bool) ([]model.Story, error) {
	if !vertical.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVertical, vertical)
	}

	if mock {
		return g.synthesizeMock(vertical, count, customPrompt), nil
	}

	if g.composer == nil {
		return nil, ErrNoComposer
	}

	grounding := g.fetchGrounding(customPrompt, vertical)

	stories := make([]model.Story, 0, count)
	for i := 0; i < count; i++ {
		slog.Info("generating story", "vertical", vertical, "index", i+1, "count", count)

		composed, err := g.composer.Compose(llm.ComposeInput{
			Vertical:     string(vertical),
			CustomPrompt: customPrompt,
			Grounding:    grounding,
		})
		if err != nil {
			return nil, fmt.Errorf("composing story %d/%d: %w", i+1, count, err)
		}

		stories = append(stories, g.assembleStory(vertical, customPrompt, composed, grounding))

		if i < count-1 {
			time.Sleep(g.batchDelay)
		}
	}

	return stories, nil
}

// GenerateDaily produces perVertical stories for each of the four verticals.
// Per-story failures are logged, counted, and skipped; the returned slice may
// be shorter than perVertical x 4. The failed count lets callers tell skips
// apart from an intentionally short request.
func (g *Generator) GenerateDaily(prompts map[model.Vertical]string, perVertical int) ([]model.Story, int, error) {
	if g.composer == nil {
		return nil, 0, ErrNoComposer
	}

	var stories []model.Story
	var failed int

	for _, vertical := range model.Verticals {
		customPrompt := prompts[vertical]
		slog.Info("generating daily stories", "vertical", vertical, "per_vertical", perVertical)

		for i := 0; i < perVertical; i++ {
			grounding := g.fetchGrounding(customPrompt, vertical)

			composed, err := g.composer.Compose(llm.ComposeInput{
				Vertical:     string(vertical),
				CustomPrompt: customPrompt,
				Grounding:    grounding,
			})
			if err != nil {
				slog.Error("error composing daily story, skipping", "vertical", vertical, "index", i+1, "error", err)
				failed++
				continue
			}

			stories = append(stories, g.assembleStory(vertical, customPrompt, composed, grounding))

			time.Sleep(g.dailyDelay)
		}
	}

	slog.Info("daily generation complete", "generated", len(stories), "failed", failed)
	return stories, failed, nil
}

// fetchGrounding degrades to an empty grounding on any search failure; the
// composer then writes from background knowledge.
func (g *Generator) fetchGrounding(query string, vertical model.Vertical) news.Grounding {
	if g.searcher == nil {
		return news.Grounding{}
	}

	grounding, err := g.searcher.Search(query, string(vertical))
	if err != nil {
		slog.Warn("grounding search failed, composing without grounding", "vertical", vertical, "error", err)
		return news.Grounding{}
	}
	return grounding
}

func (g *Generator) assembleStory(vertical model.Vertical, customPrompt string, composed *llm.ComposedStory, grounding news.Grounding) model.Story {
	imageQuery := composed.ImageQuery
	if imageQuery == "" {
		imageQuery = customPrompt
	}
	if imageQuery == "" {
		imageQuery = firstWords(composed.Title, 3)
	}

	citations := toCitations(composed.Sources)
	if len(citations) == 0 {
		citations = toCitations(grounding.Sources)
	}

	return model.Story{
		ID:          model.NewStoryID("ai"),
		Title:       composed.Title,
		Excerpt:     composed.Excerpt,
		Content:     composed.Content,
		Vertical:    vertical,
		Author:      model.AuthorAI,
		Date:        time.Now().Format("2006-01-02"),
		ImageURL:    g.images.Resolve(imageQuery),
		Tags:        normalizeTags(composed.Tags),
		AIGenerated: true,
		Source:      model.SourceAI,
		Sources:     citations,
	}
}

// normalizeTags enforces the 1..5 tag contract.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, 5)
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		out = append(out, tag)
		if len(out) == 5 {
			return out
		}
	}
	if len(out) == 0 {
		return []string{"Breaking News"}
	}
	return out
}

func toCitations(sources []news.Source) []model.Citation {
	if len(sources) == 0 {
		return nil
	}
	citations := make([]model.Citation, len(sources))
	for i, s := range sources {
		citations[i] = model.Citation{Title: s.Title, URL: s.URL}
	}
	return citations
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// ParseMockFlag coerces the loosely-typed useMockMode value crossing the
// network boundary into a strict boolean. Only true, "true", and 1 select
// mock mode; everything else means AI mode.
func ParseMockFlag(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	case float64:
		return val == 1
	case int:
		return val == 1
	}
	return false
}

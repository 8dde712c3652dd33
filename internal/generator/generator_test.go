package generator

import (
	"errors"
	"testing"

	"github.com/kingkongandy/limelight-post/internal/model"
	"github.com/kingkongandy/limelight-post/pkg/llm"
	"github.com/kingkongandy/limelight-post/pkg/news"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComposer struct {
	calls    int
	failOn   map[int]bool
	composed llm.ComposedStory
}

func (f *fakeComposer) Compose(input llm.ComposeInput) (*llm.ComposedStory, error) {
	f.calls++
	if f.failOn[f.calls] {
		return nil, errors.New("completion failed")
	}
	c := f.composed
	return &c, nil
}

type fakeImages struct {
	queries []string
}

func (f *fakeImages) Resolve(query string) string {
	f.queries = append(f.queries, query)
	return "https://img.example/photo.jpg"
}

type fakeSearcher struct {
	grounding news.Grounding
	err       error
}

func (f *fakeSearcher) Search(query, vertical string) (news.Grounding, error) {
	return f.grounding, f.err
}

func newTestGenerator(composer llm.Composer, searcher news.Searcher) (*Generator, *fakeImages) {
	images := &fakeImages{}
	return &Generator{
		composer: composer,
		searcher: searcher,
		images:   images,
	}, images
}

func validComposed() llm.ComposedStory {
	return llm.ComposedStory{
		Title:      "Pop Star Stuns Fans With Surprise Album",
		Excerpt:    "Nobody saw it coming. Streams exploded overnight.",
		Content:    "First paragraph.\n\nSecond paragraph.",
		Tags:       []string{"Music", "Trending"},
		ImageQuery: "pop star concert",
	}
}

func TestGenerateBatchInvalidVertical(t *testing.T) {
	g, _ := newTestGenerator(&fakeComposer{composed: validComposed()}, nil)

	_, err := g.GenerateBatch("politics", 1, "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVertical)
}

func TestGenerateBatchNoComposer(t *testing.T) {
	g, _ := newTestGenerator(nil, nil)

	_, err := g.GenerateBatch(model.VerticalArtsMusic, 1, "", false)
	assert.ErrorIs(t, err, ErrNoComposer)
}

func TestGenerateBatchAIMode(t *testing.T) {
	composer := &fakeComposer{composed: validComposed()}
	searcher := &fakeSearcher{grounding: news.Grounding{
		Context: "[Source 1] Tour announced",
		Sources: []news.Source{{Title: "Tour announced", URL: "https://example.com/tour"}},
	}}
	g, _ := newTestGenerator(composer, searcher)

	stories, err := g.GenerateBatch(model.VerticalArtsMusic, 3, "", false)
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, 3, composer.calls)

	for _, s := range stories {
		assert.Regexp(t, `^ai-\d+-[0-9a-z]{9}$`, s.ID)
		assert.Equal(t, model.VerticalArtsMusic, s.Vertical)
		assert.Equal(t, model.AuthorAI, s.Author)
		assert.Equal(t, model.SourceAI, s.Source)
		assert.True(t, s.AIGenerated)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Excerpt)
		assert.NotEmpty(t, s.Content)
		assert.NotEmpty(t, s.ImageURL)
		// Composer echoed no sources, so raw grounding citations are used.
		require.Len(t, s.Sources, 1)
		assert.Equal(t, "https://example.com/tour", s.Sources[0].URL)
	}
}

func TestGenerateBatchComposerFailureAborts(t *testing.T) {
	composer := &fakeComposer{composed: validComposed(), failOn: map[int]bool{2: true}}
	g, _ := newTestGenerator(composer, nil)

	_, err := g.GenerateBatch(model.VerticalBusinessNews, 3, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "composing story 2/3")
}

func TestGenerateBatchSearchFailureDegrades(t *testing.T) {
	composer := &fakeComposer{composed: validComposed()}
	searcher := &fakeSearcher{err: errors.New("search down")}
	g, _ := newTestGenerator(composer, searcher)

	stories, err := g.GenerateBatch(model.VerticalSportsLeisure, 1, "", false)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Empty(t, stories[0].Sources)
}

func TestGenerateDailySkipsFailedStories(t *testing.T) {
	// Fail story 2 of 3 in the first vertical; everything else succeeds.
	composer := &fakeComposer{composed: validComposed(), failOn: map[int]bool{2: true}}
	g, _ := newTestGenerator(composer, nil)

	stories, failed, err := g.GenerateDaily(map[model.Vertical]string{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 11, len(stories))
	assert.Equal(t, 1, failed)
	assert.Equal(t, 12, composer.calls)

	perVertical := map[model.Vertical]int{}
	for _, s := range stories {
		perVertical[s.Vertical]++
	}
	assert.Equal(t, 2, perVertical[model.VerticalArtsMusic])
	assert.Equal(t, 3, perVertical[model.VerticalFashionCulture])
	assert.Equal(t, 3, perVertical[model.VerticalSportsLeisure])
	assert.Equal(t, 3, perVertical[model.VerticalBusinessNews])
}

func TestGenerateDailyNoComposer(t *testing.T) {
	g, _ := newTestGenerator(nil, nil)

	_, _, err := g.GenerateDaily(nil, 3)
	assert.ErrorIs(t, err, ErrNoComposer)
}

func TestAssembleStoryImageQueryPreference(t *testing.T) {
	composer := &fakeComposer{composed: validComposed()}
	g, images := newTestGenerator(composer, nil)

	// imageQuery from the composer wins.
	_, err := g.GenerateBatch(model.VerticalArtsMusic, 1, "Zara Moon", false)
	require.NoError(t, err)
	assert.Equal(t, "pop star concert", images.queries[len(images.queries)-1])

	// Without imageQuery the custom prompt is used.
	composer.composed.ImageQuery = ""
	_, err = g.GenerateBatch(model.VerticalArtsMusic, 1, "Zara Moon", false)
	require.NoError(t, err)
	assert.Equal(t, "Zara Moon", images.queries[len(images.queries)-1])

	// Without either, the first three title words.
	_, err = g.GenerateBatch(model.VerticalArtsMusic, 1, "", false)
	require.NoError(t, err)
	assert.Equal(t, "Pop Star Stuns", images.queries[len(images.queries)-1])
}

func TestComposedSourcesPreferredOverGrounding(t *testing.T) {
	composed := validComposed()
	composed.Sources = []news.Source{{Title: "Echoed", URL: "https://example.com/echoed"}}
	composer := &fakeComposer{composed: composed}
	searcher := &fakeSearcher{grounding: news.Grounding{
		Sources: []news.Source{{Title: "Raw", URL: "https://example.com/raw"}},
	}}
	g, _ := newTestGenerator(composer, searcher)

	stories, err := g.GenerateBatch(model.VerticalArtsMusic, 1, "", false)
	require.NoError(t, err)
	require.Len(t, stories[0].Sources, 1)
	assert.Equal(t, "https://example.com/echoed", stories[0].Sources[0].URL)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"Breaking News"}, normalizeTags(nil))
	assert.Equal(t, []string{"Breaking News"}, normalizeTags([]string{"", "  "}))
	assert.Equal(t, []string{"A", "B"}, normalizeTags([]string{"A", "B"}))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, normalizeTags([]string{"1", "2", "3", "4", "5", "6", "7"}))
}

func TestParseMockFlag(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"bool true", true, true},
		{"string true", "true", true},
		{"json number one", float64(1), true},
		{"int one", 1, true},
		{"bool false", false, false},
		{"string false", "false", false},
		{"string yes", "yes", false},
		{"json number zero", float64(0), false},
		{"json number two", float64(2), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMockFlag(tt.input))
		})
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/kingkongandy/limelight-post/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStoryStore struct {
	saved   []model.Story
	stories []model.Story
	story   *model.Story
	err     error
}

func (f *fakeStoryStore) SaveStory(story *model.Story) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *story)
	return nil
}

func (f *fakeStoryStore) GetStory(id string) (*model.Story, error) {
	return f.story, f.err
}

func (f *fakeStoryStore) ListStories(vertical model.Vertical, limit int) ([]model.Story, error) {
	return f.stories, f.err
}

type stubImages struct {
	queries []string
}

func (s *stubImages) Resolve(query string) string {
	s.queries = append(s.queries, query)
	return "https://img.example/resolved.jpg"
}

func newTestStoryRouter(store StoryStore, images ImageResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStoryHandler(store, images)
	r.POST("/save-manual-story", h.SaveManualStory)
	r.GET("/stories", h.GetStories)
	r.GET("/stories/:id", h.GetStory)
	r.GET("/health", h.GetHealth)
	return r
}

func TestSaveManualStory(t *testing.T) {
	store := &fakeStoryStore{}
	images := &stubImages{}
	r := newTestStoryRouter(store, images)

	body := `{"title":"X marks the spot for sure","excerpt":"Y","content":"Z","vertical":"sports-leisure"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/save-manual-story", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res model.Story
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.MatchRegex(t, res.ID, regexp.MustCompile(`^manual-\d+-[0-9a-z]{9}$`))
	assert.Equal(t, false, res.AIGenerated)
	assert.Equal(t, model.SourceManual, res.Source)
	assert.Equal(t, model.AuthorEditor, res.Author)
	assert.Equal(t, "https://img.example/resolved.jpg", res.ImageURL)
	assert.Equal(t, []string{"Breaking News"}, res.Tags)

	// Image query is the first three title words.
	assert.Equal(t, []string{"X marks the"}, images.queries)
	assert.Equal(t, 1, len(store.saved))
}

func TestSaveManualStory_MissingFields(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{}, &stubImages{})

	bodies := []string{
		`{"excerpt":"Y","content":"Z","vertical":"sports-leisure"}`,
		`{"title":"X","content":"Z","vertical":"sports-leisure"}`,
		`{"title":"X","excerpt":"Y","vertical":"sports-leisure"}`,
		`{"title":"X","excerpt":"Y","content":"Z"}`,
	}

	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/save-manual-story", strings.NewReader(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSaveManualStory_InvalidVertical(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{}, &stubImages{})

	body := `{"title":"X","excerpt":"Y","content":"Z","vertical":"gossip"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/save-manual-story", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveManualStory_KeepsSuppliedFields(t *testing.T) {
	store := &fakeStoryStore{}
	images := &stubImages{}
	r := newTestStoryRouter(store, images)

	body := `{"title":"X","excerpt":"Y","content":"Z","vertical":"arts-music",` +
		`"author":"Jane","imageUrl":"https://cdn.example/pic.jpg",` +
		`"youtubeUrl":"https://www.youtube.com/watch?v=abc","keepIndefinitely":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/save-manual-story", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res model.Story
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Jane", res.Author)
	assert.Equal(t, "https://cdn.example/pic.jpg", res.ImageURL)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", res.YoutubeURL)
	assert.Equal(t, true, res.KeepIndefinitely)
	assert.Equal(t, 0, len(images.queries))
}

func TestSaveManualStory_StoreError(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{err: errors.New("redis down")}, &stubImages{})

	body := `{"title":"X","excerpt":"Y","content":"Z","vertical":"arts-music"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/save-manual-story", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStories(t *testing.T) {
	store := &fakeStoryStore{stories: []model.Story{
		{ID: "manual-1-abc", Title: "First"},
		{ID: "ai-2-def", Title: "Second"},
	}}
	r := newTestStoryRouter(store, &stubImages{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StoriesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Stories))
	assert.Equal(t, "First", res.Stories[0].Title)
	assert.Equal(t, 20, res.Limit)
}

func TestGetStories_InvalidVertical(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{}, &stubImages{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stories?vertical=nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStory_Found(t *testing.T) {
	store := &fakeStoryStore{story: &model.Story{ID: "ai-1-xyz", Title: "Found"}}
	r := newTestStoryRouter(store, &stubImages{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stories/ai-1-xyz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res model.Story
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Found", res.Title)
}

func TestGetStory_NotFound(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{}, &stubImages{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stories/ai-999-zzz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{}, &stubImages{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "ok", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newTestStoryRouter(&fakeStoryStore{err: errors.New("redis down")}, &stubImages{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

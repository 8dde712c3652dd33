package llm

import "github.com/kingkongandy/limelight-post/pkg/news"

type ComposeInput struct {
	Vertical     string
	CustomPrompt string
	Grounding    news.Grounding
}

// ComposedStory is the strict JSON shape the completion endpoint is asked to
// return. Sources are echoed back by the model when grounding was supplied.
type ComposedStory struct {
	Title      string        `json:"title"`
	Excerpt    string        `json:"excerpt"`
	Content    string        `json:"content"`
	Tags       []string      `json:"tags"`
	ImageQuery string        `json:"imageQuery"`
	Sources    []news.Source `json:"sources"`
}

type PolishInput struct {
	Title    string
	Content  string
	Vertical string
}

type Composer interface {
	Compose(input ComposeInput) (*ComposedStory, error)
}

type Polisher interface {
	Polish(input PolishInput) (string, error)
}

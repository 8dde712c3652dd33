package model

const (
	SourceManual = "manual"
	SourceAI     = "ai"

	AuthorAI     = "AI Writer"
	AuthorMock   = "Mock Writer"
	AuthorEditor = "Editor"
)

type Vertical string

const (
	VerticalArtsMusic      Vertical = "arts-music"
	VerticalFashionCulture Vertical = "fashion-culture"
	VerticalSportsLeisure  Vertical = "sports-leisure"
	VerticalBusinessNews   Vertical = "business-news"
)

// Verticals lists the four content categories in their canonical order.
var Verticals = []Vertical{
	VerticalArtsMusic,
	VerticalFashionCulture,
	VerticalSportsLeisure,
	VerticalBusinessNews,
}

func (v Vertical) Valid() bool {
	switch v {
	case VerticalArtsMusic, VerticalFashionCulture, VerticalSportsLeisure, VerticalBusinessNews:
		return true
	}
	return false
}

// Citation is a (title, url) pair pointing at the news article a story
// claim was grounded on.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Story struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Excerpt          string     `json:"excerpt"`
	Content          string     `json:"content"`
	Vertical         Vertical   `json:"vertical"`
	Author           string     `json:"author"`
	Date             string     `json:"date"`
	ImageURL         string     `json:"imageUrl"`
	Tags             []string   `json:"tags"`
	AIGenerated      bool       `json:"aiGenerated"`
	Source           string     `json:"source"`
	Sources          []Citation `json:"sources,omitempty"`
	YoutubeURL       string     `json:"youtubeUrl,omitempty"`
	KeepIndefinitely bool       `json:"keepIndefinitely,omitempty"`
}

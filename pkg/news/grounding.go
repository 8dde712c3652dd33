package news

// Source is a citation pointing at a real article used to ground a story.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Grounding is the search context handed to the story composer: a prompt-ready
// text block plus the citations it was built from. An empty Grounding is a
// valid outcome, the composer then falls back to its own background knowledge.
type Grounding struct {
	Context string
	Sources []Source
}

func (g Grounding) Empty() bool {
	return g.Context == "" && len(g.Sources) == 0
}

// Searcher turns a topic query into grounding context for one vertical.
type Searcher interface {
	Search(query, vertical string) (Grounding, error)
}

package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// parseComposedStory decodes the model output and enforces the required
// fields. A story missing title, excerpt, or content is unusable.
func parseComposedStory(content string) (*ComposedStory, error) {
	cleaned := cleanJSONResponse(content)

	var story ComposedStory
	if err := json.Unmarshal([]byte(cleaned), &story); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, cleaned)
	}

	if story.Title == "" || story.Excerpt == "" || story.Content == "" {
		return nil, fmt.Errorf("incomplete story in response: title=%q excerpt_len=%d content_len=%d",
			story.Title, len(story.Excerpt), len(story.Content))
	}

	return &story, nil
}

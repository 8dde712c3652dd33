package images

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type GettyClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewGettyClient(apiKey string) *GettyClient {
	return &GettyClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GettyClient) Name() string {
	return "Getty"
}

// Search returns the most popular editorial image for the phrase, or an
// empty string when Getty has nothing usable.
func (c *GettyClient) Search(query string) (string, error) {
	endpoint := fmt.Sprintf(
		"https://api.gettyimages.com/v3/search/images?phrase=%s&fields=id,title,thumb,preview&sort_order=most_popular&page_size=1",
		url.QueryEscape(query),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("getty request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("getty search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("getty search: status %d", resp.StatusCode)
	}

	var raw gettyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("getty decode: %w", err)
	}

	if len(raw.Images) == 0 {
		return "", nil
	}

	image := raw.Images[0]
	if len(image.DisplaySizes) > 0 && image.DisplaySizes[0].URI != "" {
		return image.DisplaySizes[0].URI, nil
	}
	return image.Preview.URI, nil
}

type gettyResponse struct {
	Images []gettyImage `json:"images"`
}

type gettyImage struct {
	DisplaySizes []gettyDisplaySize `json:"display_sizes"`
	Preview      gettyPreview       `json:"preview"`
}

type gettyDisplaySize struct {
	URI string `json:"uri"`
}

type gettyPreview struct {
	URI string `json:"uri"`
}

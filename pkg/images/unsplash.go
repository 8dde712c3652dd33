package images

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type UnsplashClient struct {
	accessKey  string
	httpClient *http.Client
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *UnsplashClient) Name() string {
	return "Unsplash"
}

// Search returns a landscape stock photo URL for the query, or an empty
// string when no results match.
func (c *UnsplashClient) Search(query string) (string, error) {
	endpoint := fmt.Sprintf(
		"https://api.unsplash.com/search/photos?query=%s&per_page=1&orientation=landscape",
		url.QueryEscape(query),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash search: status %d", resp.StatusCode)
	}

	var raw unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("unsplash decode: %w", err)
	}

	if len(raw.Results) == 0 {
		return "", nil
	}
	return raw.Results[0].URLs.Regular, nil
}

type unsplashResponse struct {
	Results []unsplashResult `json:"results"`
}

type unsplashResult struct {
	URLs unsplashURLs `json:"urls"`
}

type unsplashURLs struct {
	Regular string `json:"regular"`
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nigeshu/YoutubeSangam/model"
)

const (
	defaultRawgBaseURL = "https://api.rawg.io"

	// rawgPageSize matches the dashboard grid.
	rawgPageSize = 12
)

// RawgClient implements GameSearchClient against the RAWG REST API.
type RawgClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewRawgClient creates a new RAWG search client
func NewRawgClient(apiKey string) (*RawgClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RAWG API key is required")
	}

	return &RawgClient{
		apiKey:  apiKey,
		baseURL: defaultRawgBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

type rawgSearchResponse struct {
	Results []struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		BackgroundImage string `json:"background_image"`
		Released        string `json:"released"`
	} `json:"results"`
}

// SearchGames queries the RAWG catalog for games matching query.
func (c *RawgClient) SearchGames(ctx context.Context, query string) ([]model.RawgGame, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("search", query)
	params.Set("page_size", fmt.Sprintf("%d", rawgPageSize))

	endpoint := fmt.Sprintf("%s/api/games?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build RAWG request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("RAWG request failed")
		return nil, fmt.Errorf("RAWG request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("query", query).Msg("RAWG returned non-OK status")
		return nil, fmt.Errorf("RAWG returned status %d", resp.StatusCode)
	}

	var decoded rawgSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode RAWG response: %w", err)
	}

	games := make([]model.RawgGame, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		games = append(games, model.RawgGame{
			ID:          r.ID,
			Name:        r.Name,
			ImageURL:    r.BackgroundImage,
			ReleaseDate: r.Released,
		})
	}

	log.Debug().Str("query", query).Int("results", len(games)).Msg("RAWG search completed")
	return games, nil
}

package googlebooks

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mikelind28/chapter-champ/internal/domain"
)

const defaultMaxResults = 20

// ErrVolumeNotFound is returned when a volume ID does not exist in the catalog.
var ErrVolumeNotFound = errors.New("volume not found")

// Search queries the catalog for volumes matching the query string.
func (c *Client) Search(ctx context.Context, query string) ([]domain.BookDetails, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", defaultMaxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := c.baseURL + "/volumes?" + params.Encode()

	if c.logger != nil {
		c.logger.Debug("searching catalog", "query", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var searchResp volumesResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("catalog search results",
			"query", query,
			"count", searchResp.TotalItems,
		)
	}

	results := make([]domain.BookDetails, 0, len(searchResp.Items))
	for i := range searchResp.Items {
		results = append(results, toBookDetails(&searchResp.Items[i]))
	}

	return results, nil
}

// GetVolume fetches a single volume by its catalog ID.
func (c *Client) GetVolume(ctx context.Context, volumeID string) (*domain.BookDetails, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	volumeURL := c.baseURL + "/volumes/" + url.PathEscape(volumeID)
	if encoded := params.Encode(); encoded != "" {
		volumeURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, volumeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("volume request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrVolumeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("volume fetch failed: status %d", resp.StatusCode)
	}

	var vol volume
	if err := json.UnmarshalRead(resp.Body, &vol); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	book := toBookDetails(&vol)
	return &book, nil
}

func toBookDetails(v *volume) domain.BookDetails {
	image := v.VolumeInfo.ImageLinks.Thumbnail
	if image == "" {
		image = v.VolumeInfo.ImageLinks.SmallThumbnail
	}

	return domain.BookDetails{
		BookID:        v.ID,
		Title:         v.VolumeInfo.Title,
		Authors:       v.VolumeInfo.Authors,
		Description:   v.VolumeInfo.Description,
		Image:         image,
		InfoLink:      v.VolumeInfo.InfoLink,
		Categories:    v.VolumeInfo.Categories,
		AverageRating: v.VolumeInfo.AverageRating,
		RatingsCount:  v.VolumeInfo.RatingsCount,
		PageCount:     v.VolumeInfo.PageCount,
	}
}

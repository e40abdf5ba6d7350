package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PlacesService scrapes a short encyclopedia summary for a place name. It
// supplements the static knowledge base for places not curated there.
type PlacesService struct {
	httpClient *http.Client
	baseURL    string
}

func NewPlacesService() *PlacesService {
	return &PlacesService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://en.wikipedia.org/wiki",
	}
}

// Summary returns the first substantial paragraph of the article for place.
func (s *PlacesService) Summary(ctx context.Context, place string) (string, error) {
	title := strings.ReplaceAll(strings.TrimSpace(place), " ", "_")
	pageURL := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(title))

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "lankabot/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	var summary string
	doc.Find("#mw-content-text p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		// Skip coordinate stubs and empty lead paragraphs.
		if len(text) < 80 {
			return true
		}
		summary = text
		return false
	})

	if summary == "" {
		return "", fmt.Errorf("no summary found for %q", place)
	}
	return summary, nil
}

package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultWikiEndpoint — публичный API MediaWiki.
const DefaultWikiEndpoint = "https://en.wikipedia.org/w/api.php"

const (
	wikiTimeout  = 5 * time.Second
	wikiRetryMax = 1

	// wikiExtractChars — сколько символов extract запрашивать у API.
	wikiExtractChars = 500
)

// WikiClient — клиент энциклопедии: поиск статьи и выжимка текста.
type WikiClient struct {
	endpoint string
	http     *retryablehttp.Client
}

// NewWikiClient создаёт клиент. Пустой endpoint — DefaultWikiEndpoint.
func NewWikiClient(endpoint string) *WikiClient {
	if endpoint == "" {
		endpoint = DefaultWikiEndpoint
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = wikiRetryMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = wikiTimeout

	return &WikiClient{endpoint: endpoint, http: retryClient}
}

// Summary ищет статью по теме и возвращает её краткую выжимку.
//
// Два запроса: list=search выбирает заголовок лучшего совпадения,
// prop=extracts возвращает первые абзацы без разметки.
func (c *WikiClient) Summary(ctx context.Context, topic string) (string, error) {
	title, err := c.searchTitle(ctx, topic)
	if err != nil {
		return "", err
	}

	return c.extract(ctx, title)
}

func (c *WikiClient) searchTitle(ctx context.Context, topic string) (string, error) {
	params := url.Values{
		"action":   {"query"},
		"format":   {"json"},
		"list":     {"search"},
		"srsearch": {topic},
		"srlimit":  {"1"},
	}

	var result struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := c.get(ctx, params, &result); err != nil {
		return "", err
	}

	if len(result.Query.Search) == 0 {
		return "", ErrNoResults
	}

	return result.Query.Search[0].Title, nil
}

func (c *WikiClient) extract(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"prop":        {"extracts"},
		"titles":      {title},
		"exchars":     {fmt.Sprint(wikiExtractChars)},
		"explaintext": {"1"},
		"exintro":     {"1"},
	}

	var result struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := c.get(ctx, params, &result); err != nil {
		return "", err
	}

	for _, page := range result.Query.Pages {
		if extract := strings.TrimSpace(page.Extract); extract != "" {
			return extract, nil
		}
	}

	return "", ErrNoResults
}

func (c *WikiClient) get(ctx context.Context, params url.Values, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrWikiRequest, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWikiRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("%w: status %d", ErrWikiRequest, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrWikiRequest, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrWikiRequest, err)
	}

	return nil
}

package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ExternalJob is one record from the paging job API. Providers carries the
// semi-structured application-link pairs as delivered.
type ExternalJob struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Description    string     `json:"description"`
	EmploymentType string     `json:"employmentType"`
	Image          string     `json:"image"`
	Providers      []Provider `json:"jobProviders"`
}

type Provider struct {
	JobProvider string `json:"jobProvider"`
	URL         string `json:"url"`
}

type pageResponse struct {
	Jobs     []ExternalJob `json:"jobs"`
	NextPage string        `json:"nextPage"`
}

// Client drives the cursor-paginated job API. Pages are fetched strictly in
// sequence and never retried.
type Client struct {
	http   *http.Client
	logger *log.Logger
}

func NewClient(timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// FetchAll accumulates jobs across pages until the page limit is reached, a
// page comes back empty, the response carries no next-page cursor, or a
// request fails. Every one of those is normal termination: the partial
// accumulator is the result.
func (c *Client) FetchAll(ctx context.Context, apiURL string, params map[string]string, headers map[string]string, maxPages int) []ExternalJob {
	if maxPages <= 0 {
		maxPages = 1
	}

	all := make([]ExternalJob, 0, 64)
	cursor := ""

	for page := 0; page < maxPages; page++ {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		if cursor != "" {
			q.Set("nextPage", cursor)
		}

		resp, err := c.getPage(ctx, apiURL, q, headers)
		if err != nil {
			c.logger.Printf("job fetch stopped page=%d err=%v", page+1, err)
			break
		}

		if len(resp.Jobs) == 0 {
			c.logger.Printf("job fetch done page=%d reason=empty_page", page+1)
			break
		}
		all = append(all, resp.Jobs...)
		c.logger.Printf("job fetch page=%d jobs=%d", page+1, len(resp.Jobs))

		cursor = strings.TrimSpace(resp.NextPage)
		if cursor == "" {
			c.logger.Printf("job fetch done page=%d reason=no_cursor", page+1)
			break
		}
	}

	c.logger.Printf("job fetch total=%d", len(all))
	return all
}

func (c *Client) getPage(ctx context.Context, apiURL string, q url.Values, headers map[string]string) (pageResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return pageResponse{}, err
	}
	req.URL.RawQuery = q.Encode()
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pageResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return pageResponse{}, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return pageResponse{}, err
	}
	return out, nil
}

// DefaultParams are the paging API's stock query parameters; callers overlay
// query/location on top.
func DefaultParams(query, location string) map[string]string {
	if strings.TrimSpace(location) == "" {
		location = "Worldwide"
	}
	return map[string]string{
		"query":                 strings.TrimSpace(query),
		"location":              strings.TrimSpace(location),
		"autoTranslateLocation": "true",
		"remoteOnly":            "false",
		"employmentTypes":       "fulltime;parttime;intern;contractor",
	}
}

// DefaultHeaders builds the API-gateway auth headers.
func DefaultHeaders(key, host string) map[string]string {
	h := map[string]string{}
	if strings.TrimSpace(key) != "" {
		h["x-rapidapi-key"] = strings.TrimSpace(key)
	}
	if strings.TrimSpace(host) != "" {
		h["x-rapidapi-host"] = strings.TrimSpace(host)
	}
	return h
}

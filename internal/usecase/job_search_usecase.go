package usecase

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

type JobSearchUsecase interface {
	Search(ctx context.Context, userSkills, location string, page int) (json.RawMessage, error)
}

// JobSearch proxies the external search API and passes its results array
// through untouched.
type JobSearch struct {
	http   *http.Client
	apiURL string
	apiKey string
	logger *log.Logger
}

func NewJobSearchUsecase(apiURL, apiKey string, timeout time.Duration, logger *log.Logger) *JobSearch {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &JobSearch{
		http:   &http.Client{Timeout: timeout},
		apiURL: apiURL,
		apiKey: apiKey,
		logger: logger,
	}
}

func (u *JobSearch) Search(ctx context.Context, userSkills, location string, page int) (json.RawMessage, error) {
	userSkills = strings.TrimSpace(userSkills)
	if userSkills == "" {
		return nil, ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("search", strings.Join(strings.Fields(strings.ReplaceAll(userSkills, ",", " ")), " "))
	if location = strings.TrimSpace(location); location != "" {
		q.Set("location", location)
	}
	q.Set("page", fmt.Sprintf("%d", page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, ErrInternal
	}
	if u.apiKey != "" {
		req.Header.Set("Authorization", "Token "+u.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.http.Do(req)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Search] request failed | error=%v", err)
		}
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if u.logger != nil {
			u.logger.Printf("[Search] unexpected status | status=%d", resp.StatusCode)
		}
		return nil, ErrUpstream
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, ErrUpstream
	}

	var payload struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrUpstream
	}
	if len(payload.Results) == 0 {
		return json.RawMessage("[]"), nil
	}
	return payload.Results, nil
}

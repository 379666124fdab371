// Package jsonapi fetches subscription items from a paged JSON endpoint.
// It is the reference fetch collaborator; site-specific scraping lives
// outside this module.
package jsonapi

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"media_archive/internal/domain"
	"media_archive/internal/service"
)

// Config holds endpoint and retry configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Fetcher implements service.Fetcher against a paged JSON endpoint. The
// subscription name selects the remote feed; the cursor is passed through
// verbatim.
type Fetcher struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "jsonapi"),
	}
}

// FetchItems returns up to max items beyond the cursor, oldest first.
func (f *Fetcher) FetchItems(ctx context.Context, sub *domain.Subscription, cursor *string, max int) ([]service.RemoteItem, error) {
	endpoint, err := f.buildURL(sub, cursor, max)
	if err != nil {
		return nil, err
	}

	resp, err := f.fetchPage(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("fetched page",
		"subscription", sub.Name,
		"items", len(resp.Items),
		"has_more", resp.HasMore,
	)

	return f.transform(resp.Items), nil
}

func (f *Fetcher) buildURL(sub *domain.Subscription, cursor *string, max int) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("feed", sub.Name)
	q.Set("limit", fmt.Sprintf("%d", max))
	if cursor != nil {
		q.Set("after", *cursor)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (f *Fetcher) fetchPage(ctx context.Context, endpoint string) (*APIResponse, error) {
	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		resp, err = f.doRequest(ctx, endpoint)
		if err == nil {
			return resp, nil
		}

		if attempt == f.maxAttempts {
			break
		}

		backoff := f.calculateBackoff(attempt)
		f.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", f.maxAttempts, err)
}

func (f *Fetcher) doRequest(ctx context.Context, endpoint string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MediaArchive/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (f *Fetcher) calculateBackoff(attempt int) time.Duration {
	backoff := f.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > f.maxBackoff {
		backoff = f.maxBackoff
	}
	return backoff
}

func (f *Fetcher) transform(items []Item) []service.RemoteItem {
	result := make([]service.RemoteItem, 0, len(items))

	for _, it := range items {
		postType, ok := parsePostType(it.Type)
		if !ok {
			f.logger.Warn("unknown post type, defaulting to set",
				"original_id", it.ID,
				"type", it.Type,
			)
		}

		remote := service.RemoteItem{
			OriginalID: it.ID,
			URL:        it.URL,
			Title:      it.Title,
			Comment:    it.Comment,
			Type:       postType,
			Metadata:   it.Metadata,
			Related:    it.Related,
		}

		if it.Cursor != "" {
			cursor := it.Cursor
			remote.Cursor = &cursor
		}

		if it.PostTime != nil {
			postTime, err := time.Parse(time.RFC3339, *it.PostTime)
			if err != nil {
				f.logger.Warn("failed to parse post time",
					"original_id", it.ID,
					"post_time", *it.PostTime,
				)
			} else {
				remote.PostTime = &postTime
			}
		}

		for _, tag := range it.Tags {
			category, err := domain.ParseTagCategory(tag.Category)
			if err != nil {
				f.logger.Warn("skipping tag with unknown category",
					"original_id", it.ID,
					"category", tag.Category,
					"tag", tag.Name,
				)
				continue
			}
			remote.Tags = append(remote.Tags, service.TagRef{
				Category: category,
				Name:     tag.Name,
			})
		}

		for _, file := range it.Files {
			hash, err := hex.DecodeString(file.Hash)
			if err != nil {
				f.logger.Warn("skipping file with invalid hash",
					"original_id", it.ID,
					"hash", file.Hash,
				)
				continue
			}
			remote.Files = append(remote.Files, domain.FileAttrs{
				Hash:     hash,
				Filename: file.Filename,
				Mime:     file.Mime,
				Ext:      file.Ext,
			})
		}

		result = append(result, remote)
	}

	return result
}

func parsePostType(s string) (domain.PostType, bool) {
	switch s {
	case "set", "":
		return domain.TypeSet, true
	case "collection":
		return domain.TypeCollection, true
	case "blog":
		return domain.TypeBlog, true
	default:
		return domain.TypeSet, false
	}
}

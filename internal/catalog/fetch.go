package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FetchParams narrow a catalog query.
type FetchParams struct {
	Location string
	JobType  string
	Limit    int
}

// FetchByTags queries the catalog once per tag and merges the results,
// dropping duplicates by posting ID. A failing tag is logged and skipped so
// one bad query never empties the whole pool. The returned postings are raw
// API objects; pass them through Normalize before handing them to the engine.
func (c *Client) FetchByTags(ctx context.Context, tags []string, params FetchParams) []map[string]any {
	perTag := make([][]map[string]any, len(tags))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	for i, tag := range tags {
		g.Go(func() error {
			jobs, err := c.fetchTag(ctx, tag, params)
			if err != nil {
				c.logger.Warn("fetching jobs for tag failed",
					zap.String("tag", tag),
					zap.Error(err),
				)
				return nil
			}
			perTag[i] = jobs
			return nil
		})
	}

	// Per-tag errors are swallowed above; Wait only reports context cancellation.
	if err := g.Wait(); err != nil {
		c.logger.Warn("catalog fetch interrupted", zap.Error(err))
	}

	seen := make(map[string]struct{})
	var merged []map[string]any
	var unidentified int
	for _, jobs := range perTag {
		for _, job := range jobs {
			id := rawJobID(job)
			if id == "" {
				unidentified++
				id = "unidentified_" + strconv.Itoa(unidentified)
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, job)
		}
	}

	c.logger.Info("fetched unique jobs from catalog",
		zap.Int("tags", len(tags)),
		zap.Int("jobs", len(merged)),
	)
	return merged
}

func (c *Client) fetchTag(ctx context.Context, tag string, params FetchParams) ([]map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	q := url.Values{}
	q.Set("tags", tag)
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	if params.JobType != "" {
		q.Set("job_type", params.JobType)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return parseJobsPayload(body)
}

// parseJobsPayload tolerates the catalog's response shapes: a bare list, or
// an object wrapping the list under "jobs" or "data".
func parseJobsPayload(body []byte) ([]map[string]any, error) {
	var asList []map[string]any
	if err := json.Unmarshal(body, &asList); err == nil {
		return asList, nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(body, &asObject); err != nil {
		return nil, fmt.Errorf("unexpected catalog response: %w", err)
	}

	for _, key := range []string{"jobs", "data"} {
		raw, ok := asObject[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &asList); err != nil {
			return nil, fmt.Errorf("decoding %q list: %w", key, err)
		}
		return asList, nil
	}

	return nil, nil
}

// rawJobID extracts the posting identifier from a raw catalog object, trying
// the known aliases in order.
func rawJobID(job map[string]any) string {
	for _, key := range []string{"id", "job_id", "_id"} {
		switch v := job[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// Ping performs a cheap reachability probe against the catalog, used by the
// health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+"?limit=1", nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}
	return nil
}

// Package restapi talks to the remote /tasks collection.
package restapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

const tasksPath = "/tasks"

// StatusError is returned for any non-2xx answer from the store.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Is lets a 404 match domain.ErrTaskNotFound.
func (e *StatusError) Is(target error) bool {
	return e.Code == http.StatusNotFound && target == domain.ErrTaskNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

var (
	_ ports.TaskStore = (*Client)(nil)
	_ ports.Pinger    = (*Client)(nil)
)

func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	var records []taskRecord
	if err := c.do(ctx, http.MethodGet, tasksPath, nil, &records); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, record.toDomain())
	}
	return tasks, nil
}

func (c *Client) Create(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	var record taskRecord
	if err := c.do(ctx, http.MethodPost, tasksPath, bodyFromInput(input), &record); err != nil {
		return domain.Task{}, err
	}
	return record.toDomain(), nil
}

// Update sends the full task body.
func (c *Client) Update(ctx context.Context, id string, task domain.Task) (domain.Task, error) {
	var record taskRecord
	if err := c.do(ctx, http.MethodPut, taskPath(id), recordFromTask(task), &record); err != nil {
		return domain.Task{}, err
	}
	return record.toDomain(), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func (c *Client) PingContext(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, tasksPath, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Debug("failed to close response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func taskPath(id string) string {
	return tasksPath + "/" + url.PathEscape(id)
}

// Package client provides the transport adapter for the upstream employee API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/festy23/employee_api/internal/employee/model"
)

// Client defines the interface for upstream employee API access.
// Each call performs exactly one outbound HTTP request; there are no retries.
type Client interface {
	// FetchAll retrieves every employee from the upstream collection endpoint.
	FetchAll(ctx context.Context) ([]model.Employee, error)

	// FetchByID retrieves a single employee by ID. The caller validates the ID.
	FetchByID(ctx context.Context, id string) (*model.Employee, error)

	// Create requests creation of a new employee upstream.
	Create(ctx context.Context, input *model.EmployeeInput) (*model.Employee, error)
}

type httpClient struct {
	client  *http.Client
	baseURL string
	logger  *zap.SugaredLogger
}

// New creates a new upstream client. The *http.Client is a shared,
// concurrency-safe collaborator; baseURL points at the employee collection
// endpoint (no trailing slash).
func New(c *http.Client, baseURL string, logger *zap.SugaredLogger) Client {
	return &httpClient{client: c, baseURL: baseURL, logger: logger}
}

// FetchAll retrieves every employee from the upstream collection endpoint.
// A null data payload means "no employees", not a failure.
func (h *httpClient) FetchAll(ctx context.Context) ([]model.Employee, error) {
	h.logger.Debugw("FetchAll called", "url", h.baseURL)

	envelope, err := doRequest[[]model.Employee](ctx, h, http.MethodGet, h.baseURL, nil)
	if err != nil {
		h.logger.Errorw("FetchAll failed", "error", err)
		return nil, err
	}

	if envelope.Data == nil {
		h.logger.Warnw("FetchAll received empty data payload")
		return []model.Employee{}, nil
	}

	h.logger.Infow("FetchAll completed", "count", len(envelope.Data))
	return envelope.Data, nil
}

// FetchByID retrieves a single employee. A null data payload maps to
// ErrNotFound carrying the requested ID.
func (h *httpClient) FetchByID(ctx context.Context, id string) (*model.Employee, error) {
	url := h.baseURL + "/" + id
	h.logger.Debugw("FetchByID called", "id", id, "url", url)

	envelope, err := doRequest[*model.Employee](ctx, h, http.MethodGet, url, nil)
	if err != nil {
		h.logger.Errorw("FetchByID failed", "id", id, "error", err)
		return nil, err
	}

	if envelope.Data == nil {
		h.logger.Infow("FetchByID employee not found", "id", id)
		return nil, fmt.Errorf("%w: id %s", model.ErrNotFound, id)
	}

	return envelope.Data, nil
}

// Create posts the input to the collection endpoint and decodes the created
// employee. A null data payload after a successful call maps to ErrCreateFailed.
func (h *httpClient) Create(ctx context.Context, input *model.EmployeeInput) (*model.Employee, error) {
	h.logger.Debugw("Create called", "name", input.Name)

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode employee input: %w", err)
	}

	envelope, err := doRequest[*model.Employee](ctx, h, http.MethodPost, h.baseURL, body)
	if err != nil {
		h.logger.Errorw("Create failed", "name", input.Name, "error", err)
		return nil, err
	}

	if envelope.Data == nil {
		h.logger.Errorw("Create returned no employee", "name", input.Name)
		return nil, fmt.Errorf("%w: input %+v", model.ErrCreateFailed, *input)
	}

	h.logger.Infow("Create completed", "id", envelope.Data.ID, "name", input.Name)
	return envelope.Data, nil
}

// doRequest issues one HTTP request and decodes the response envelope.
// Transport failures and non-2xx statuses map to ErrUpstream with the
// underlying cause preserved.
func doRequest[T any](ctx context.Context, h *httpClient, method, url string, body []byte) (*model.Response[T], error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUpstream, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", model.ErrUpstream, resp.StatusCode, url)
	}

	var envelope model.Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", model.ErrUpstream, err)
	}

	return &envelope, nil
}

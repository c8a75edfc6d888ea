package ood

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// requestTimeout bounds every API round trip.
const requestTimeout = 30 * time.Second

// apiClient implements Client against a live Open OnDemand instance.
// Its only state is the immutable configuration and the shared http.Client,
// so concurrent calls need no additional locking.
type apiClient struct {
	config Config
	http   *http.Client
}

// NewClient returns a Client bound to the given configuration.
func NewClient(config Config) Client {
	return &apiClient{
		config: config,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

func (c *apiClient) Request(ctx context.Context, method, path string, body any) Result {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Failure("encoding_error", err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return Failure("connection_error", err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Failure("connection_error", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure("connection_error", err.Error())
	}
	return decodeBody(resp.StatusCode, respBody)
}

func (c *apiClient) RequestRaw(ctx context.Context, method, path string, body []byte) (int, []byte) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return 0, []byte(err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, []byte(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, []byte(err.Error())
	}
	return resp.StatusCode, respBody
}

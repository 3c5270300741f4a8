package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the delivery management API. The zero HTTPClient is
// replaced with one carrying a sane timeout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// do sends one request and decodes the response into out. Errors are
// mapped onto the taxonomy so callers can branch with errors.As.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServerError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	json.Unmarshal(raw, &envelope)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		if envelope.Errors == nil {
			envelope.Errors = map[string]string{}
			if envelope.Error != "" {
				envelope.Errors["non_field"] = envelope.Error
			}
		}
		return &ValidationError{Fields: envelope.Errors}
	case resp.StatusCode == http.StatusUnauthorized:
		return &UnauthorizedError{Message: envelope.Error}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: envelope.Error}
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Message: envelope.Error}
	default:
		return &ServerError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
}

// read performs a GET with one retry on NetworkError. Writes never
// retry: a timed-out POST may still have committed.
func (c *Client) read(ctx context.Context, path string, query url.Values, out interface{}) error {
	err := c.do(ctx, http.MethodGet, path, query, nil, out)
	var netErr *NetworkError
	if err != nil && errors.As(err, &netErr) && ctx.Err() == nil {
		err = c.do(ctx, http.MethodGet, path, query, nil, out)
	}
	return err
}

// Package apiclient is a thin client for the company site REST API. It
// attaches the admin bearer token from a session.Store to every request when
// one is present.
package apiclient

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

	"github.com/zaqqye/navodaya_web/internal/session"
)

// Response carries the decoded payload of a successful call.
type Response[T any] struct {
	Data       T
	StatusCode int
}

type Client struct {
	baseURL string
	session session.Store
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New builds a client for the backend at backendURL. The API lives under
// backendURL + "/api".
func New(backendURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(backendURL, "/") + "/api",
		session: store,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.session != nil {
		if tok, ok := c.session.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// do sends one request and decodes a 2xx body into out. out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &Error{Kind: KindNetwork, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &Error{Kind: KindNetwork, Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &Error{
			Kind:       kindForStatus(resp.StatusCode),
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, &Error{Kind: KindDecode, Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
		}
	}
	return resp.StatusCode, nil
}

// errorMessage pulls a human readable message from {"error": ...} or
// {"detail": ...} bodies.
func errorMessage(raw []byte) string {
	var body struct {
		Error  string          `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if body.Error != "" {
		return body.Error
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		return detail
	}
	return strings.TrimSpace(string(body.Detail))
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (*Response[T], error) {
	var out T
	code, err := c.do(ctx, method, path, body, &out)
	if err != nil {
		return nil, err
	}
	return &Response[T]{Data: out, StatusCode: code}, nil
}

var errEmptyID = errors.New("empty id")

func idPath(prefix, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", errEmptyID
	}
	return prefix + "/" + url.PathEscape(id), nil
}

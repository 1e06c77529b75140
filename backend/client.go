// File: backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cabadmin/config"
)

type tokenKey struct{}

// WithToken returns a context carrying the bearer token to send upstream.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token carried by the context, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks to the operation's REST backend. Responses beyond status are
// untyped JSON decoded into whatever the caller asks for; non-2xx responses
// become a generic error carrying the endpoint's failure description.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) token(ctx context.Context) string {
	if token := TokenFromContext(ctx); token != "" {
		return token
	}
	return config.AppConfig.APIToken
}

// do issues one request. The Authorization header is always present; when no
// token is available it is sent empty rather than omitted.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, failMsg string) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", failMsg, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(failMsg)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, failMsg string) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out, failMsg)
}

func (c *Client) post(ctx context.Context, path string, body, out any, failMsg string) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, failMsg)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, failMsg string) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, failMsg)
}

func (c *Client) delete(ctx context.Context, path string, failMsg string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, failMsg)
}

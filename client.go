package oai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fogfish/opts"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public API root used when no override is given.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client performs credentialed HTTP exchanges on behalf of every endpoint
// service. It holds the bearer credential, which is immutable after
// construction, and the base URL, which may be swapped between calls.
//
// Concurrent use of the request primitives is safe. SetBaseURL is not
// synchronized: do not call it concurrently with in-flight requests.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string
	log     zerolog.Logger
}

var (
	// WithHTTPClient overrides the underlying HTTP client, e.g. to set
	// timeouts or a custom transport.
	WithHTTPClient = opts.ForName[Client, *http.Client]("http")
	// WithBaseURL points the client at a different API root.
	WithBaseURL = opts.ForName[Client, string]("baseURL")
	// WithLogger enables debug logging of request dispatch and completion.
	WithLogger = opts.ForName[Client, zerolog.Logger]("log")
)

// New creates a Client for the given API key.
func New(apiKey string, options ...opts.Option[Client]) *Client {
	c := &Client{
		http:    http.DefaultClient,
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		log:     zerolog.Nop(),
	}
	if err := opts.Apply(c, options); err != nil {
		panic(err)
	}
	return c
}

// BaseURL returns the API root currently in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetBaseURL changes the API root for subsequent calls. Requests already in
// flight keep the address they were dispatched with.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Get issues a GET against path (relative to the base URL) and decodes the
// JSON response body.
func (c *Client) Get(ctx context.Context, path string) (gjson.Result, error) {
	return c.do(ctx, http.MethodGet, path, "", nil)
}

// PostJSON serializes body as the JSON request body of a POST against path
// and decodes the JSON response body.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (gjson.Result, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return gjson.Result{}, wrapErr(ErrEncoding, err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(data))
}

// PostMultipart sends form as a multipart/form-data POST against path and
// decodes the JSON response body. A form that failed to build, for example
// because a source file could not be read, returns that failure before any
// network I/O happens.
func (c *Client) PostMultipart(ctx context.Context, path string, form *Form) (gjson.Result, error) {
	contentType, body, err := form.encode()
	if err != nil {
		return gjson.Result{}, err
	}
	return c.do(ctx, http.MethodPost, path, contentType, body)
}

// Delete issues a DELETE against path and decodes the JSON response body.
func (c *Client) Delete(ctx context.Context, path string) (gjson.Result, error) {
	return c.do(ctx, http.MethodDelete, path, "", nil)
}

// do performs exactly one round trip. Any syntactically valid JSON body is
// returned as a success value regardless of HTTP status, so service error
// envelopes reach the caller for inspection; only transport failures and
// non-JSON bodies become errors.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (gjson.Result, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + path
	requestID := uuid.NewString()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", url).
		Msg("dispatching request")

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return gjson.Result{}, wrapErr(ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, wrapErr(ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, wrapErr(ErrTransport, err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(raw)).
		Msg("request complete")

	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, wrapErr(ErrEncoding, fmt.Errorf("response body is not valid JSON: %s", snippet(raw)))
	}
	return gjson.ParseBytes(raw), nil
}

func snippet(raw []byte) string {
	const max = 120
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}

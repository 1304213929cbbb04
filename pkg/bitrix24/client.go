// Package bitrix24 is a client for the Bitrix24 CRM REST API consumed over
// inbound webhooks. A webhook (user id + secret token) is the only
// credential; every method is one synchronous HTTP round trip against
// {base}/rest/{user}/{secret}/{method}.json with a {result,error} envelope.
package bitrix24

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single API call when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options configures a Client. Immutable after New.
type Options struct {
	// BaseURL is the portal origin, e.g. https://example.bitrix24.ru,
	// without a trailing slash (one is tolerated and stripped).
	BaseURL string
	// UserID and Secret are the two path segments of the inbound webhook.
	UserID string
	Secret string
	// Timeout for one HTTP call. Defaults to DefaultTimeout.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS peer and host verification.
	// Verification is on unless the caller opts out.
	InsecureSkipVerify bool
	// Logger receives debug-level call traces. Optional.
	Logger *zap.SugaredLogger
}

// Client issues Bitrix24 REST calls. Safe for reuse; holds no state beyond
// the immutable options and the underlying HTTP client.
type Client struct {
	http *resty.Client
	opts Options
	log  *zap.SugaredLogger
}

// New validates the webhook coordinates and builds a client.
func New(opts Options) (*Client, error) {
	opts.BaseURL = strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("bitrix24: base URL is empty")
	}
	if opts.UserID == "" || opts.Secret == "" {
		return nil, fmt.Errorf("bitrix24: webhook user id and secret are required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	r := resty.New()
	r.SetTimeout(opts.Timeout)
	r.SetHeader("Accept", "application/json")
	if opts.InsecureSkipVerify {
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Client{http: r, opts: opts, log: log}, nil
}

// endpoint composes the full webhook URL for one REST method. The user id
// and secret are path segments and must be escaped.
func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/rest/%s/%s/%s.json",
		c.opts.BaseURL,
		url.PathEscape(c.opts.UserID),
		url.PathEscape(c.opts.Secret),
		method)
}

// envelope is the uniform Bitrix24 response shape.
type envelope struct {
	Result           json.RawMessage `json:"result"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

// call performs one REST invocation and returns the raw result value.
// GET sends the payload as query parameters, POST as a JSON body. Both the
// transport and the envelope failure modes surface as errors; result may be
// empty when the remote returns null or omits it.
func (c *Client) call(ctx context.Context, httpMethod, apiMethod string, payload Fields) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)

	switch httpMethod {
	case http.MethodGet:
		for key, value := range payload {
			req.SetQueryParam(key, fmt.Sprint(value))
		}
	case http.MethodPost:
		req.SetHeader("Content-Type", "application/json; charset=utf-8")
		req.SetBody(payload)
	default:
		return nil, fmt.Errorf("bitrix24: unsupported HTTP method %q", httpMethod)
	}

	start := time.Now()
	resp, err := req.Execute(httpMethod, c.endpoint(apiMethod))
	if err != nil {
		return nil, fmt.Errorf("transport error: %w", err)
	}

	c.log.Debugw("bitrix24 call",
		"method", apiMethod,
		"status", resp.StatusCode(),
		"elapsed", time.Since(start))

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, &HTTPError{Status: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	if env.Error != "" {
		return nil, &APIError{Code: env.Error, Description: env.ErrorDescription}
	}
	return env.Result, nil
}

package buycraft

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/buger/jsonparser"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/shininet/buycraft/pkg/buildinfo"
	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/httputil"
	"github.com/shininet/buycraft/pkg/integrations"
	"github.com/shininet/buycraft/pkg/observability"
)

// DefaultBaseURL is the Buycraft v3 API endpoint.
const DefaultBaseURL = "https://api.buycraft.net/v3"

// Client issues authenticated requests to the Buycraft API and caches the
// five data categories in memory.
//
// A Client is safe for concurrent use. Cache reads and writes are serialized
// by an internal lock, so concurrent accessors never observe a category
// mid-update.
type Client struct {
	*integrations.Client
	secret  string
	baseURL string
	logger  *log.Logger
	blocked atomic.Bool

	mu      sync.Mutex
	data    store
	lastErr error
}

// Response is a successful API response envelope.
type Response struct {
	Code    Status
	Payload json.RawMessage
}

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	retry      httputil.Policy
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger. Without it the client logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRetry retries transport failures and HTTP 5xx responses up to
// attempts times in total, doubling delay after each try. API status codes
// are never retried.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *options) { o.retry = httputil.Policy{Attempts: attempts, Delay: delay} }
}

// New creates a Client authenticated with secret.
// It fails with [errors.ErrCodeInvalidSecret] if secret is empty.
func New(secret string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New(errors.ErrCodeInvalidSecret, "no secret key supplied")
	}
	o := options{baseURL: DefaultBaseURL, retry: httputil.NoRetry}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	headers := map[string]string{
		"Accept":     "application/json",
		"User-Agent": buildinfo.UserAgent(),
	}
	return &Client{
		Client:  integrations.NewClient(o.httpClient, o.retry, headers),
		secret:  secret,
		baseURL: strings.TrimRight(o.baseURL, "?"),
		logger:  o.logger,
	}, nil
}

// Blocked reports whether the API has rejected the secret key. A blocked
// client never makes another request.
func (c *Client) Blocked() bool {
	return c.blocked.Load()
}

// Fetch issues one authenticated request. params are sent as query
// parameters together with the secret; a "secret" key in params is
// ignored.
//
// Returns:
//   - the response envelope on status 0
//   - [errors.ErrCodeNeedMoreInfo], [errors.ErrCodeSecretNotFound] or
//     [errors.ErrCodeUnknownAction] for the documented failure statuses
//   - [errors.ErrCodeUnexpectedStatus] wrapping an [*APIError] for any other status
//   - [errors.ErrCodeSecretBlocked] without any I/O once the secret was rejected
//   - [errors.ErrCodeNetwork] or [errors.ErrCodeMalformedResponse] for
//     transport and decoding failures
func (c *Client) Fetch(ctx context.Context, params map[string]string) (*Response, error) {
	if c.blocked.Load() {
		return nil, errors.New(errors.ErrCodeSecretBlocked, "%s", StatusSecretNotFound.Description())
	}

	q := make(url.Values, len(params)+1)
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("secret", c.secret)

	action := params["action"]
	reqID := uuid.NewString()
	start := time.Now()

	body, err := c.GetBytes(ctx, c.baseURL+"?"+q.Encode(), map[string]string{"X-Request-ID": reqID})
	if err != nil {
		c.logger.Debug("request failed", "action", action, "request_id", reqID, "err", err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %q", action)
	}

	resp, err := parseEnvelope(body)
	if err != nil {
		c.logger.Debug("bad response", "action", action, "request_id", reqID, "err", err)
		return nil, err
	}
	c.logger.Debug("fetched", "action", action, "request_id", reqID,
		"status", resp.Code, "duration", time.Since(start))
	observability.API().OnStatus(ctx, action, int(resp.Code))

	if resp.Code == StatusSecretNotFound {
		c.blocked.Store(true)
		c.logger.Warn("secret key rejected, client blocked")
		observability.API().OnBlocked(ctx)
	} else if !resp.Code.Known() {
		c.logger.Warn("unknown status code", "action", action, "request_id", reqID, "code", int(resp.Code))
	}
	if err := resp.Code.err(body); err != nil {
		return nil, err
	}
	return resp, nil
}

// parseEnvelope reads the status code and, on success, the raw payload.
func parseEnvelope(body []byte) (*Response, error) {
	code, err := jsonparser.GetFloat(body, "code")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedResponse, err, "response has no numeric code")
	}
	// Whole-valued floats such as 101.0 are the same code as 101.
	if code < math.MinInt32 || code > math.MaxInt32 || code != math.Trunc(code) {
		apiErr := &APIError{Status: -1, Body: append([]byte(nil), body...)}
		if code >= math.MinInt32 && code <= math.MaxInt32 {
			apiErr.Status = Status(math.Trunc(code))
		}
		return nil, errors.Wrap(errors.ErrCodeUnexpectedStatus, apiErr, "The API returned an unknown code: %v.", code)
	}
	resp := &Response{Code: Status(code)}
	if resp.Code != StatusOK {
		return resp, nil
	}

	payload, typ, _, err := jsonparser.Get(body, "payload")
	if err != nil || typ == jsonparser.NotExist || typ == jsonparser.Null {
		return nil, errors.New(errors.ErrCodeMalformedResponse, "successful response has no payload")
	}
	if typ == jsonparser.String {
		// jsonparser strips the quotes from string values.
		payload, err = json.Marshal(string(payload))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedResponse, err, "re-encode payload")
		}
	}
	resp.Payload = append(json.RawMessage(nil), payload...)
	return resp, nil
}

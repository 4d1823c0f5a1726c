// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package github provides a typed client for the GitHub REST API.
//
// Every operation returns an Outcome describing either the decoded payload
// or a failure descriptor built from GitHub's response. The returned error is
// reserved for requests that could not be built or sent.
package github

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "github-rest"
	acceptHeader     = "application/vnd.github+json"
	apiVersion       = "2022-11-28"
	instrumentation  = "github.com/andrewkroh/github-rest/github"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
//
// The Doer owns authentication, connection reuse, timeouts and
// cancellation. The Client calls it exactly once per operation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls GitHub REST API operations through a Doer.
// It is safe for concurrent use when its Doer is.
type Client struct {
	doer      Doer
	baseURL   string
	userAgent string
	log       *slog.Logger
	tokens    oauth2.TokenSource

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for the GitHub API.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets the transport used to send requests. It may be
// combined with WithToken in any order.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithToken authenticates every request with the given token. The token is
// added on top of the Doer configured with WithHTTPClient: an *http.Client
// has its transport wrapped in an OAuth2 bearer transport, any other Doer
// gets the Authorization header set before each call.
func WithToken(token string) Option {
	return func(c *Client) {
		c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
}

// authorize returns d with every request authenticated by ts.
func authorize(d Doer, ts oauth2.TokenSource) Doer {
	if hc, ok := d.(*http.Client); ok {
		authed := *hc
		authed.Transport = &oauth2.Transport{Source: ts, Base: hc.Transport}
		return &authed
	}
	return tokenDoer{next: d, tokens: ts}
}

// tokenDoer sets the Authorization header for Doers that are not an
// *http.Client.
type tokenDoer struct {
	next   Doer
	tokens oauth2.TokenSource
}

func (d tokenDoer) Do(req *http.Request) (*http.Response, error) {
	tok, err := d.tokens.Token()
	if err != nil {
		return nil, err
	}
	req = req.Clone(req.Context())
	tok.SetAuthHeader(req)
	return d.next.Do(req)
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Client with the given options.
// By default it uses https://api.github.com as the base URL,
// http.DefaultClient (unauthenticated), and slog.Default() as the logger.
func NewClient(opts ...Option) *Client {
	c := &Client{
		doer:      http.DefaultClient,
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokens != nil {
		c.doer = authorize(c.doer, c.tokens)
	}

	c.tracer = otel.Tracer(instrumentation)
	meter := otel.Meter(instrumentation)

	c.requests, _ = meter.Int64Counter("github_rest.requests",
		metric.WithDescription("Number of GitHub API calls by operation and outcome"),
	)
	c.duration, _ = meter.Float64Histogram("github_rest.request.duration",
		metric.WithDescription("Duration of GitHub API calls"),
		metric.WithUnit("s"),
	)

	return c
}

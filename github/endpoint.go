// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/andrewkroh/github-rest/internal/decode"
	"github.com/andrewkroh/github-rest/internal/query"
	"github.com/andrewkroh/github-rest/types"
)

// ErrInvalidRequest is returned, wrapped, when operation parameters fail
// validation. No request is sent in that case.
var ErrInvalidRequest = query.ErrInvalid

// Outcome attribute values used for metrics and logs.
const (
	outcomeSuccess    = "success"
	outcomeFailure    = "failure"
	outcomeUnexpected = "unexpected"
)

// endpoint describes one API action: where it lives, which status codes
// mean success or a documented failure, and how a success body decodes.
type endpoint[T any] struct {
	name    string
	method  string
	path    string // fmt template; each %s is filled with an escaped segment
	success []int
	failure []int
	decode  func(body []byte) T
}

// request carries the per-call parameters of an endpoint.
type request struct {
	segments []string // path segments, in template order
	query    any      // option struct encoded as query parameters
	body     any      // value encoded as the JSON request body
}

// single decodes a body holding one JSON object.
func single[T any](fn func(decode.Object) *T) func([]byte) *T {
	return func(body []byte) *T {
		v, _ := decode.Parse(body)
		return decode.One(v, fn)
	}
}

// many decodes a body holding a JSON array of objects.
func many[T any](fn func(decode.Object) *T) func([]byte) []T {
	return func(body []byte) []T {
		v, _ := decode.Parse(body)
		return decode.Many(v, fn)
	}
}

// flag is the payload of operations whose success has no body.
func flag([]byte) bool { return true }

// call performs ep once and maps the response status to an Outcome.
// Only failures to build or send the request are returned as errors; errors
// from the Doer and from reading the body are returned unchanged.
func call[T any](ctx context.Context, c *Client, ep endpoint[T], r request) (Outcome[T], error) {
	ctx, span := c.tracer.Start(ctx, "github."+ep.name)
	defer span.End()

	start := time.Now()

	req, urlPath, err := c.newRequest(ctx, ep.name, ep.method, ep.path, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.ErrorContext(ctx, "failed to create request", slog.String("method", ep.name), slog.String("error", err.Error()))
		return Outcome[T]{}, err
	}

	span.SetAttributes(
		attribute.String("http.request.method", ep.method),
		attribute.String("url.path", urlPath),
	)

	resp, err := c.doer.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.ErrorContext(ctx, "request failed", slog.String("method", ep.name), slog.String("error", err.Error()))
		return Outcome[T]{}, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.ErrorContext(ctx, "failed to read response", slog.String("method", ep.name), slog.String("error", err.Error()))
		return Outcome[T]{}, err
	}

	var out Outcome[T]
	var result string
	switch {
	case slices.Contains(ep.success, resp.StatusCode):
		result = outcomeSuccess
		out = succeeded(ep.decode(body))
		c.log.DebugContext(ctx, "request succeeded", slog.String("method", ep.name), slog.Int("status", resp.StatusCode))

	case slices.Contains(ep.failure, resp.StatusCode):
		result = outcomeFailure
		out = failed[T](types.DecodeResponse(resp.StatusCode, body))
		span.SetStatus(codes.Error, out.Failure.Error())
		c.log.WarnContext(ctx, "request failed with documented status",
			slog.String("method", ep.name),
			slog.Int("status", resp.StatusCode),
		)

	default:
		result = outcomeUnexpected
		out = failed[T](types.NewResponse(resp.StatusCode))
		span.SetStatus(codes.Error, out.Failure.Error())
		c.log.WarnContext(ctx, "unexpected response",
			slog.String("method", ep.name),
			slog.Int("status", resp.StatusCode),
		)
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", ep.name),
		attribute.String("outcome", result),
	)
	c.requests.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return out, nil
}

// newRequest validates the parameters of r and builds the HTTP request for
// the named operation. It also returns the request path for span attributes.
func (c *Client) newRequest(ctx context.Context, name, method, template string, r request) (*http.Request, string, error) {
	urlPath, err := expandPath(template, r.segments)
	if err != nil {
		return nil, "", fmt.Errorf("github: %s: %w", name, err)
	}
	if err := query.Validate(r.query); err != nil {
		return nil, "", fmt.Errorf("github: %s: %w", name, err)
	}
	if err := query.Validate(r.body); err != nil {
		return nil, "", fmt.Errorf("github: %s: %w", name, err)
	}

	params, err := query.Encode(r.query)
	if err != nil {
		return nil, "", fmt.Errorf("github: %s: %w", name, err)
	}

	fullURL := c.baseURL + urlPath
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, "", fmt.Errorf("github: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, "", fmt.Errorf("github: creating request: %w", err)
	}
	setHeaders(req, c.userAgent)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, urlPath, nil
}

// setHeaders sets the standard GitHub API headers on a request.
func setHeaders(req *http.Request, userAgent string) {
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
}

// expandPath fills the %s placeholders of template with path-escaped
// segments. Empty segments are rejected.
func expandPath(template string, segments []string) (string, error) {
	args := make([]any, len(segments))
	for i, s := range segments {
		if s == "" {
			return "", fmt.Errorf("%w: empty path parameter", ErrInvalidRequest)
		}
		args[i] = url.PathEscape(s)
	}
	if len(args) == 0 {
		return template, nil
	}
	return fmt.Sprintf(template, args...), nil
}

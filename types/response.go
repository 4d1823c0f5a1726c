// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package types contains the records returned by the GitHub REST API and
// their decoders.
//
// Every attribute of every record is optional. A DecodeX function maps nil
// or empty input to nil, so "no data" and "empty data" are indistinguishable,
// and a nested empty object decodes to an absent nested record.
package types

import (
	"fmt"

	"github.com/andrewkroh/github-rest/internal/decode"
)

// Response describes a call that did not yield the expected payload.
type Response struct {
	// StatusCode is the HTTP status code returned by GitHub.
	StatusCode int `json:"status_code"`

	// Body is the decoded JSON error body. Nil when GitHub sent no body,
	// an empty body, or something other than a JSON object.
	Body map[string]any `json:"body,omitempty"`

	// Message is the human-readable message from the body, if any.
	Message *string `json:"message,omitempty"`

	// DocumentationURL links to the GitHub docs for the failing endpoint.
	DocumentationURL *string `json:"documentation_url,omitempty"`
}

// NewResponse returns a descriptor carrying only the status code.
func NewResponse(statusCode int) *Response {
	return &Response{StatusCode: statusCode}
}

// DecodeResponse builds a descriptor from a status code and a raw response
// body. It never fails: an unparseable body is treated as absent.
func DecodeResponse(statusCode int, body []byte) *Response {
	r := NewResponse(statusCode)

	v, ok := decode.Parse(body)
	if !ok {
		return r
	}
	obj := decode.AsObject(v)
	if len(obj) == 0 {
		return r
	}

	r.Body = obj
	r.Message = decode.String(obj, "message")
	r.DocumentationURL = decode.String(obj, "documentation_url")
	return r
}

// Error implements the error interface so callers can propagate a failure
// descriptor when they choose to.
func (r *Response) Error() string {
	if r.Message != nil && *r.Message != "" {
		return fmt.Sprintf("github: HTTP %d: %s", r.StatusCode, *r.Message)
	}
	return fmt.Sprintf("github: HTTP %d", r.StatusCode)
}

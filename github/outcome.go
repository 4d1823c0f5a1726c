// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package github

import "github.com/andrewkroh/github-rest/types"

// Outcome is the result of one API call. When OK is true Payload holds the
// decoded success payload; otherwise Failure describes what GitHub returned.
//
// The payload shape is fixed per operation: a single record (*types.X), a
// list of records ([]types.X), or a flag (bool) for operations whose success
// carries no body.
type Outcome[T any] struct {
	OK      bool            `json:"ok"`
	Payload T               `json:"payload,omitempty"`
	Failure *types.Response `json:"failure,omitempty"`
}

// Get returns the payload and whether the call succeeded.
func (o Outcome[T]) Get() (T, bool) {
	return o.Payload, o.OK
}

func succeeded[T any](payload T) Outcome[T] {
	return Outcome[T]{OK: true, Payload: payload}
}

func failed[T any](r *types.Response) Outcome[T] {
	return Outcome[T]{Failure: r}
}

// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package github

import (
	"context"
	"net/http"

	"github.com/andrewkroh/github-rest/types"
)

// SearchOptions are the query parameters of the search operations.
// Q is required; see GitHub's search syntax for qualifiers.
type SearchOptions struct {
	Q     string  `url:"q" validate:"required"`
	Sort  *string `url:"sort,omitempty"`
	Order *string `url:"order,omitempty" validate:"omitempty,oneof=asc desc"`

	PerPage *int `url:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
	Page    *int `url:"page,omitempty" validate:"omitempty,min=1"`
}

var (
	searchRepositories = endpoint[*types.SearchRepositoriesResult]{
		name:    "search_repositories",
		method:  http.MethodGet,
		path:    "/search/repositories",
		success: []int{http.StatusOK},
		failure: []int{http.StatusNotModified, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
		decode:  single(types.DecodeSearchRepositoriesResult),
	}

	searchCode = endpoint[*types.SearchCodeResult]{
		name:    "search_code",
		method:  http.MethodGet,
		path:    "/search/code",
		success: []int{http.StatusOK},
		failure: []int{http.StatusNotModified, http.StatusForbidden, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
		decode:  single(types.DecodeSearchCodeResult),
	}

	searchUsers = endpoint[*types.SearchUsersResult]{
		name:    "search_users",
		method:  http.MethodGet,
		path:    "/search/users",
		success: []int{http.StatusOK},
		failure: []int{http.StatusNotModified, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
		decode:  single(types.DecodeSearchUsersResult),
	}
)

// SearchRepositories finds repositories matching opts.Q.
func (c *Client) SearchRepositories(ctx context.Context, opts *SearchOptions) (Outcome[*types.SearchRepositoriesResult], error) {
	return call(ctx, c, searchRepositories, request{query: searchQuery(opts)})
}

// SearchCode finds file contents matching opts.Q.
func (c *Client) SearchCode(ctx context.Context, opts *SearchOptions) (Outcome[*types.SearchCodeResult], error) {
	return call(ctx, c, searchCode, request{query: searchQuery(opts)})
}

// SearchUsers finds users matching opts.Q.
func (c *Client) SearchUsers(ctx context.Context, opts *SearchOptions) (Outcome[*types.SearchUsersResult], error) {
	return call(ctx, c, searchUsers, request{query: searchQuery(opts)})
}

// searchQuery substitutes an empty SearchOptions for nil so that the
// missing q is reported by validation.
func searchQuery(opts *SearchOptions) *SearchOptions {
	if opts == nil {
		return &SearchOptions{}
	}
	return opts
}

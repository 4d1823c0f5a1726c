// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package github

import (
	"context"
	"net/http"

	"github.com/andrewkroh/github-rest/types"
)

// ListOptions are the pagination parameters shared by list operations.
type ListOptions struct {
	PerPage *int `url:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
	Page    *int `url:"page,omitempty" validate:"omitempty,min=1"`
}

var (
	getAuthenticatedUser = endpoint[*types.User]{
		name:    "get_authenticated_user",
		method:  http.MethodGet,
		path:    "/user",
		success: []int{http.StatusOK},
		failure: []int{http.StatusNotModified, http.StatusUnauthorized, http.StatusForbidden},
		decode:  single(types.DecodeUser),
	}

	getUser = endpoint[*types.User]{
		name:    "get_user",
		method:  http.MethodGet,
		path:    "/users/%s",
		success: []int{http.StatusOK},
		failure: []int{http.StatusNotFound},
		decode:  single(types.DecodeUser),
	}

	listFollowers = endpoint[[]types.SimpleUser]{
		name:    "list_followers",
		method:  http.MethodGet,
		path:    "/users/%s/followers",
		success: []int{http.StatusOK},
		decode:  many(types.DecodeSimpleUser),
	}

	checkFollowing = endpoint[bool]{
		name:    "check_following",
		method:  http.MethodGet,
		path:    "/user/following/%s",
		success: []int{http.StatusNoContent},
		failure: []int{http.StatusNotModified, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
		decode:  flag,
	}

	followUser = endpoint[bool]{
		name:    "follow_user",
		method:  http.MethodPut,
		path:    "/user/following/%s",
		success: []int{http.StatusNoContent, http.StatusNotModified},
		failure: []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
		decode:  flag,
	}

	unfollowUser = endpoint[bool]{
		name:    "unfollow_user",
		method:  http.MethodDelete,
		path:    "/user/following/%s",
		success: []int{http.StatusNoContent, http.StatusNotModified},
		failure: []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
		decode:  flag,
	}
)

// GetAuthenticatedUser fetches the user the client is authenticated as.
func (c *Client) GetAuthenticatedUser(ctx context.Context) (Outcome[*types.User], error) {
	return call(ctx, c, getAuthenticatedUser, request{})
}

// GetUser fetches the public profile of a user.
func (c *Client) GetUser(ctx context.Context, username string) (Outcome[*types.User], error) {
	return call(ctx, c, getUser, request{segments: []string{username}})
}

// ListFollowers lists the users following username. opts may be nil.
func (c *Client) ListFollowers(ctx context.Context, username string, opts *ListOptions) (Outcome[[]types.SimpleUser], error) {
	return call(ctx, c, listFollowers, request{segments: []string{username}, query: opts})
}

// CheckFollowing reports whether the authenticated user follows username.
// A 404 means they do not and is returned as a failure Outcome.
func (c *Client) CheckFollowing(ctx context.Context, username string) (Outcome[bool], error) {
	return call(ctx, c, checkFollowing, request{segments: []string{username}})
}

// FollowUser makes the authenticated user follow username.
func (c *Client) FollowUser(ctx context.Context, username string) (Outcome[bool], error) {
	return call(ctx, c, followUser, request{segments: []string{username}})
}

// UnfollowUser makes the authenticated user stop following username.
func (c *Client) UnfollowUser(ctx context.Context, username string) (Outcome[bool], error) {
	return call(ctx, c, unfollowUser, request{segments: []string{username}})
}

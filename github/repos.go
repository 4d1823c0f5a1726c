// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package github

import (
	"context"
	"net/http"

	"github.com/andrewkroh/github-rest/types"
)

// ListMyRepositoriesOptions are the query parameters of
// GET /user/repos. Nil fields are not sent.
type ListMyRepositoriesOptions struct {
	// Visibility is one of "all", "public" or "private".
	Visibility *string `url:"visibility,omitempty" validate:"omitempty,oneof=all public private internal"`

	// Affiliation is a comma-separated list of "owner", "collaborator"
	// and "organization_member".
	Affiliation *string `url:"affiliation,omitempty"`

	// Type is one of "all", "owner", "public", "private" or "member".
	// GitHub answers 422 when it is combined with Visibility or Affiliation.
	Type *string `url:"type,omitempty" validate:"omitempty,oneof=all owner public private member internal"`

	// Sort is one of "created", "updated", "pushed" or "full_name".
	Sort *string `url:"sort,omitempty" validate:"omitempty,oneof=created updated pushed full_name"`

	// Direction is "asc" or "desc".
	Direction *string `url:"direction,omitempty" validate:"omitempty,oneof=asc desc"`

	PerPage *int `url:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
	Page    *int `url:"page,omitempty" validate:"omitempty,min=1"`

	// Since and Before are ISO 8601 timestamps (YYYY-MM-DDTHH:MM:SSZ).
	Since  *string `url:"since,omitempty"`
	Before *string `url:"before,omitempty"`
}

// ListUserRepositoriesOptions are the query parameters of
// GET /users/{username}/repos. Nil fields are not sent.
type ListUserRepositoriesOptions struct {
	Type      *string `url:"type,omitempty" validate:"omitempty,oneof=all owner member"`
	Sort      *string `url:"sort,omitempty" validate:"omitempty,oneof=created updated pushed full_name"`
	Direction *string `url:"direction,omitempty" validate:"omitempty,oneof=asc desc"`
	PerPage   *int    `url:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
	Page      *int    `url:"page,omitempty" validate:"omitempty,min=1"`
}

// UpdateRepositoryRequest is the body of PATCH /repos/{owner}/{repo}.
// Nil fields are left unchanged.
type UpdateRepositoryRequest struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	Homepage            *string `json:"homepage,omitempty"`
	Private             *bool   `json:"private,omitempty"`
	Visibility          *string `json:"visibility,omitempty" validate:"omitempty,oneof=public private internal"`
	HasIssues           *bool   `json:"has_issues,omitempty"`
	HasProjects         *bool   `json:"has_projects,omitempty"`
	HasWiki             *bool   `json:"has_wiki,omitempty"`
	IsTemplate          *bool   `json:"is_template,omitempty"`
	DefaultBranch       *string `json:"default_branch,omitempty"`
	AllowSquashMerge    *bool   `json:"allow_squash_merge,omitempty"`
	AllowMergeCommit    *bool   `json:"allow_merge_commit,omitempty"`
	AllowRebaseMerge    *bool   `json:"allow_rebase_merge,omitempty"`
	AllowAutoMerge      *bool   `json:"allow_auto_merge,omitempty"`
	DeleteBranchOnMerge *bool   `json:"delete_branch_on_merge,omitempty"`
	AllowForking        *bool   `json:"allow_forking,omitempty"`
	Archived            *bool   `json:"archived,omitempty"`
}

var (
	listMyRepositories = endpoint[[]types.Repository]{
		name:    "list_my_repositories",
		method:  http.MethodGet,
		path:    "/user/repos",
		success: []int{http.StatusOK},
		failure: []int{http.StatusNotModified, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity},
		decode:  many(types.DecodeRepository),
	}

	listUserRepositories = endpoint[[]types.MinimalRepository]{
		name:    "list_user_repositories",
		method:  http.MethodGet,
		path:    "/users/%s/repos",
		success: []int{http.StatusOK},
		decode:  many(types.DecodeMinimalRepository),
	}

	getRepository = endpoint[*types.Repository]{
		name:    "get_repository",
		method:  http.MethodGet,
		path:    "/repos/%s/%s",
		success: []int{http.StatusOK},
		failure: []int{http.StatusMovedPermanently, http.StatusForbidden, http.StatusNotFound},
		decode:  single(types.DecodeRepository),
	}

	updateRepository = endpoint[*types.Repository]{
		name:    "update_repository",
		method:  http.MethodPatch,
		path:    "/repos/%s/%s",
		success: []int{http.StatusOK},
		failure: []int{http.StatusTemporaryRedirect, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity},
		decode:  single(types.DecodeRepository),
	}
)

// ListMyRepositories lists repositories the authenticated user has explicit
// permission (read, write, or admin) to access. opts may be nil.
func (c *Client) ListMyRepositories(ctx context.Context, opts *ListMyRepositoriesOptions) (Outcome[[]types.Repository], error) {
	return call(ctx, c, listMyRepositories, request{query: opts})
}

// ListUserRepositories lists public repositories for the given user.
// opts may be nil.
func (c *Client) ListUserRepositories(ctx context.Context, username string, opts *ListUserRepositoriesOptions) (Outcome[[]types.MinimalRepository], error) {
	return call(ctx, c, listUserRepositories, request{segments: []string{username}, query: opts})
}

// GetRepository fetches a single repository.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (Outcome[*types.Repository], error) {
	return call(ctx, c, getRepository, request{segments: []string{owner, repo}})
}

// UpdateRepository edits repository settings. Only non-nil fields of req
// are sent.
func (c *Client) UpdateRepository(ctx context.Context, owner, repo string, req *UpdateRepositoryRequest) (Outcome[*types.Repository], error) {
	if req == nil {
		req = &UpdateRepositoryRequest{}
	}
	return call(ctx, c, updateRepository, request{segments: []string{owner, repo}, body: req})
}

// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package types

import (
	"github.com/andrewkroh/github-rest/internal/decode"
)

// Match is a single highlighted span inside a text match fragment.
type Match struct {
	Text    *string `json:"text,omitempty"`
	Indices []int64 `json:"indices,omitempty"`
}

// DecodeMatch decodes a Match. It returns nil for nil or empty input.
func DecodeMatch(obj decode.Object) *Match {
	if len(obj) == 0 {
		return nil
	}
	return &Match{
		Text:    decode.String(obj, "text"),
		Indices: decode.Ints(obj, "indices"),
	}
}

// SearchResultTextMatch is returned for search results when the request
// asks for the text-match media type.
type SearchResultTextMatch struct {
	ObjectURL  *string `json:"object_url,omitempty"`
	ObjectType *string `json:"object_type,omitempty"`
	Property   *string `json:"property,omitempty"`
	Fragment   *string `json:"fragment,omitempty"`
	Matches    []Match `json:"matches,omitempty"`
}

// DecodeSearchResultTextMatch decodes a SearchResultTextMatch. It returns nil
// for nil or empty input.
func DecodeSearchResultTextMatch(obj decode.Object) *SearchResultTextMatch {
	if len(obj) == 0 {
		return nil
	}
	return &SearchResultTextMatch{
		ObjectURL:  decode.String(obj, "object_url"),
		ObjectType: decode.String(obj, "object_type"),
		Property:   decode.String(obj, "property"),
		Fragment:   decode.String(obj, "fragment"),
		Matches:    decode.Field(obj, "matches", DecodeMatch),
	}
}

// CodeSearchResultItem is one hit from GET /search/code.
type CodeSearchResultItem struct {
	Name           *string                 `json:"name,omitempty"`
	Path           *string                 `json:"path,omitempty"`
	SHA            *string                 `json:"sha,omitempty"`
	URL            *string                 `json:"url,omitempty"`
	GitURL         *string                 `json:"git_url,omitempty"`
	HTMLURL        *string                 `json:"html_url,omitempty"`
	Repository     *MinimalRepository      `json:"repository,omitempty"`
	Score          *float64                `json:"score,omitempty"`
	FileSize       *int64                  `json:"file_size,omitempty"`
	Language       *string                 `json:"language,omitempty"`
	LastModifiedAt *string                 `json:"last_modified_at,omitempty"`
	LineNumbers    []string                `json:"line_numbers,omitempty"`
	TextMatches    []SearchResultTextMatch `json:"text_matches,omitempty"`
}

// DecodeCodeSearchResultItem decodes a CodeSearchResultItem. It returns nil
// for nil or empty input.
func DecodeCodeSearchResultItem(obj decode.Object) *CodeSearchResultItem {
	if len(obj) == 0 {
		return nil
	}
	return &CodeSearchResultItem{
		Name:           decode.String(obj, "name"),
		Path:           decode.String(obj, "path"),
		SHA:            decode.String(obj, "sha"),
		URL:            decode.String(obj, "url"),
		GitURL:         decode.String(obj, "git_url"),
		HTMLURL:        decode.String(obj, "html_url"),
		Repository:     decode.One(obj["repository"], DecodeMinimalRepository),
		Score:          decode.Float(obj, "score"),
		FileSize:       decode.Int(obj, "file_size"),
		Language:       decode.String(obj, "language"),
		LastModifiedAt: decode.String(obj, "last_modified_at"),
		LineNumbers:    decode.Strings(obj, "line_numbers"),
		TextMatches:    decode.Field(obj, "text_matches", DecodeSearchResultTextMatch),
	}
}

// SearchCodeResult is the response of GET /search/code.
type SearchCodeResult struct {
	TotalCount        *int64                 `json:"total_count,omitempty"`
	IncompleteResults *bool                  `json:"incomplete_results,omitempty"`
	Items             []CodeSearchResultItem `json:"items,omitempty"`
}

// DecodeSearchCodeResult decodes a SearchCodeResult. It returns nil for nil
// or empty input.
func DecodeSearchCodeResult(obj decode.Object) *SearchCodeResult {
	if len(obj) == 0 {
		return nil
	}
	return &SearchCodeResult{
		TotalCount:        decode.Int(obj, "total_count"),
		IncompleteResults: decode.Bool(obj, "incomplete_results"),
		Items:             decode.Field(obj, "items", DecodeCodeSearchResultItem),
	}
}

// RepoSearchResultItem is one hit from GET /search/repositories.
type RepoSearchResultItem struct {
	Repository

	Score       *float64                `json:"score,omitempty"`
	TextMatches []SearchResultTextMatch `json:"text_matches,omitempty"`
}

// DecodeRepoSearchResultItem decodes a RepoSearchResultItem. It returns nil
// for nil or empty input.
func DecodeRepoSearchResultItem(obj decode.Object) *RepoSearchResultItem {
	repo := DecodeRepository(obj)
	if repo == nil {
		return nil
	}
	return &RepoSearchResultItem{
		Repository:  *repo,
		Score:       decode.Float(obj, "score"),
		TextMatches: decode.Field(obj, "text_matches", DecodeSearchResultTextMatch),
	}
}

// SearchRepositoriesResult is the response of GET /search/repositories.
type SearchRepositoriesResult struct {
	TotalCount        *int64                 `json:"total_count,omitempty"`
	IncompleteResults *bool                  `json:"incomplete_results,omitempty"`
	Items             []RepoSearchResultItem `json:"items,omitempty"`
}

// DecodeSearchRepositoriesResult decodes a SearchRepositoriesResult. It
// returns nil for nil or empty input.
func DecodeSearchRepositoriesResult(obj decode.Object) *SearchRepositoriesResult {
	if len(obj) == 0 {
		return nil
	}
	return &SearchRepositoriesResult{
		TotalCount:        decode.Int(obj, "total_count"),
		IncompleteResults: decode.Bool(obj, "incomplete_results"),
		Items:             decode.Field(obj, "items", DecodeRepoSearchResultItem),
	}
}

// UserSearchResultItem is one hit from GET /search/users.
type UserSearchResultItem struct {
	SimpleUser

	Score       *float64                `json:"score,omitempty"`
	TextMatches []SearchResultTextMatch `json:"text_matches,omitempty"`
}

// DecodeUserSearchResultItem decodes a UserSearchResultItem. It returns nil
// for nil or empty input.
func DecodeUserSearchResultItem(obj decode.Object) *UserSearchResultItem {
	user := DecodeSimpleUser(obj)
	if user == nil {
		return nil
	}
	return &UserSearchResultItem{
		SimpleUser:  *user,
		Score:       decode.Float(obj, "score"),
		TextMatches: decode.Field(obj, "text_matches", DecodeSearchResultTextMatch),
	}
}

// SearchUsersResult is the response of GET /search/users.
type SearchUsersResult struct {
	TotalCount        *int64                 `json:"total_count,omitempty"`
	IncompleteResults *bool                  `json:"incomplete_results,omitempty"`
	Items             []UserSearchResultItem `json:"items,omitempty"`
}

// DecodeSearchUsersResult decodes a SearchUsersResult. It returns nil for nil
// or empty input.
func DecodeSearchUsersResult(obj decode.Object) *SearchUsersResult {
	if len(obj) == 0 {
		return nil
	}
	return &SearchUsersResult{
		TotalCount:        decode.Int(obj, "total_count"),
		IncompleteResults: decode.Bool(obj, "incomplete_results"),
		Items:             decode.Field(obj, "items", DecodeUserSearchResultItem),
	}
}

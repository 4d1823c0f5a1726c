// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package types

import (
	"github.com/andrewkroh/github-rest/internal/decode"
)

// Repository is the full repository shape returned by the repository
// endpoints.
type Repository struct {
	ID          *int64      `json:"id,omitempty"`
	NodeID      *string     `json:"node_id,omitempty"`
	Name        *string     `json:"name,omitempty"`
	FullName    *string     `json:"full_name,omitempty"`
	Owner       *SimpleUser `json:"owner,omitempty"`
	Private     *bool       `json:"private,omitempty"`
	HTMLURL     *string     `json:"html_url,omitempty"`
	Description *string     `json:"description,omitempty"`
	Fork        *bool       `json:"fork,omitempty"`
	URL         *string     `json:"url,omitempty"`
	Homepage    *string     `json:"homepage,omitempty"`
	Language    *string     `json:"language,omitempty"`

	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
	PushedAt  *string `json:"pushed_at,omitempty"`

	Size            *int64 `json:"size,omitempty"`
	StargazersCount *int64 `json:"stargazers_count,omitempty"`
	WatchersCount   *int64 `json:"watchers_count,omitempty"`
	ForksCount      *int64 `json:"forks_count,omitempty"`
	OpenIssuesCount *int64 `json:"open_issues_count,omitempty"`
	Forks           *int64 `json:"forks,omitempty"`
	OpenIssues      *int64 `json:"open_issues,omitempty"`
	Watchers        *int64 `json:"watchers,omitempty"`

	MasterBranch  *string `json:"master_branch,omitempty"`
	DefaultBranch *string `json:"default_branch,omitempty"`

	ForksURL         *string `json:"forks_url,omitempty"`
	KeysURL          *string `json:"keys_url,omitempty"`
	CollaboratorsURL *string `json:"collaborators_url,omitempty"`
	TeamsURL         *string `json:"teams_url,omitempty"`
	HooksURL         *string `json:"hooks_url,omitempty"`
	IssueEventsURL   *string `json:"issue_events_url,omitempty"`
	EventsURL        *string `json:"events_url,omitempty"`
	AssigneesURL     *string `json:"assignees_url,omitempty"`
	BranchesURL      *string `json:"branches_url,omitempty"`
	TagsURL          *string `json:"tags_url,omitempty"`
	BlobsURL         *string `json:"blobs_url,omitempty"`
	GitTagsURL       *string `json:"git_tags_url,omitempty"`
	GitRefsURL       *string `json:"git_refs_url,omitempty"`
	TreesURL         *string `json:"trees_url,omitempty"`
	StatusesURL      *string `json:"statuses_url,omitempty"`
	LanguagesURL     *string `json:"languages_url,omitempty"`
	StargazersURL    *string `json:"stargazers_url,omitempty"`
	ContributorsURL  *string `json:"contributors_url,omitempty"`
	SubscribersURL   *string `json:"subscribers_url,omitempty"`
	SubscriptionURL  *string `json:"subscription_url,omitempty"`
	CommitsURL       *string `json:"commits_url,omitempty"`
	GitCommitsURL    *string `json:"git_commits_url,omitempty"`
	CommentsURL      *string `json:"comments_url,omitempty"`
	IssueCommentURL  *string `json:"issue_comment_url,omitempty"`
	ContentsURL      *string `json:"contents_url,omitempty"`
	CompareURL       *string `json:"compare_url,omitempty"`
	MergesURL        *string `json:"merges_url,omitempty"`
	ArchiveURL       *string `json:"archive_url,omitempty"`
	DownloadsURL     *string `json:"downloads_url,omitempty"`
	IssuesURL        *string `json:"issues_url,omitempty"`
	PullsURL         *string `json:"pulls_url,omitempty"`
	MilestonesURL    *string `json:"milestones_url,omitempty"`
	NotificationsURL *string `json:"notifications_url,omitempty"`
	LabelsURL        *string `json:"labels_url,omitempty"`
	ReleasesURL      *string `json:"releases_url,omitempty"`
	DeploymentsURL   *string `json:"deployments_url,omitempty"`
	GitURL           *string `json:"git_url,omitempty"`
	SSHURL           *string `json:"ssh_url,omitempty"`
	CloneURL         *string `json:"clone_url,omitempty"`
	SVNURL           *string `json:"svn_url,omitempty"`
	MirrorURL        *string `json:"mirror_url,omitempty"`

	Topics     []string `json:"topics,omitempty"`
	Visibility *string  `json:"visibility,omitempty"`

	HasIssues    *bool `json:"has_issues,omitempty"`
	HasProjects  *bool `json:"has_projects,omitempty"`
	HasPages     *bool `json:"has_pages,omitempty"`
	HasWiki      *bool `json:"has_wiki,omitempty"`
	HasDownloads *bool `json:"has_downloads,omitempty"`
	Archived     *bool `json:"archived,omitempty"`
	Disabled     *bool `json:"disabled,omitempty"`
	IsTemplate   *bool `json:"is_template,omitempty"`

	AllowMergeCommit    *bool `json:"allow_merge_commit,omitempty"`
	AllowSquashMerge    *bool `json:"allow_squash_merge,omitempty"`
	AllowRebaseMerge    *bool `json:"allow_rebase_merge,omitempty"`
	AllowAutoMerge      *bool `json:"allow_auto_merge,omitempty"`
	DeleteBranchOnMerge *bool `json:"delete_branch_on_merge,omitempty"`
	AllowForking        *bool `json:"allow_forking,omitempty"`

	TempCloneToken *string          `json:"temp_clone_token,omitempty"`
	License        *SimpleLicense   `json:"license,omitempty"`
	Permissions    *RepoPermissions `json:"permissions,omitempty"`
}

// DecodeRepository decodes a Repository. It returns nil for nil or empty
// input.
func DecodeRepository(obj decode.Object) *Repository {
	if len(obj) == 0 {
		return nil
	}
	return &Repository{
		ID:          decode.Int(obj, "id"),
		NodeID:      decode.String(obj, "node_id"),
		Name:        decode.String(obj, "name"),
		FullName:    decode.String(obj, "full_name"),
		Owner:       decode.One(obj["owner"], DecodeSimpleUser),
		Private:     decode.Bool(obj, "private"),
		HTMLURL:     decode.String(obj, "html_url"),
		Description: decode.String(obj, "description"),
		Fork:        decode.Bool(obj, "fork"),
		URL:         decode.String(obj, "url"),
		Homepage:    decode.String(obj, "homepage"),
		Language:    decode.String(obj, "language"),

		CreatedAt: decode.String(obj, "created_at"),
		UpdatedAt: decode.String(obj, "updated_at"),
		PushedAt:  decode.String(obj, "pushed_at"),

		Size:            decode.Int(obj, "size"),
		StargazersCount: decode.Int(obj, "stargazers_count"),
		WatchersCount:   decode.Int(obj, "watchers_count"),
		ForksCount:      decode.Int(obj, "forks_count"),
		OpenIssuesCount: decode.Int(obj, "open_issues_count"),
		Forks:           decode.Int(obj, "forks"),
		OpenIssues:      decode.Int(obj, "open_issues"),
		Watchers:        decode.Int(obj, "watchers"),

		MasterBranch:  decode.String(obj, "master_branch"),
		DefaultBranch: decode.String(obj, "default_branch"),

		ForksURL:         decode.String(obj, "forks_url"),
		KeysURL:          decode.String(obj, "keys_url"),
		CollaboratorsURL: decode.String(obj, "collaborators_url"),
		TeamsURL:         decode.String(obj, "teams_url"),
		HooksURL:         decode.String(obj, "hooks_url"),
		IssueEventsURL:   decode.String(obj, "issue_events_url"),
		EventsURL:        decode.String(obj, "events_url"),
		AssigneesURL:     decode.String(obj, "assignees_url"),
		BranchesURL:      decode.String(obj, "branches_url"),
		TagsURL:          decode.String(obj, "tags_url"),
		BlobsURL:         decode.String(obj, "blobs_url"),
		GitTagsURL:       decode.String(obj, "git_tags_url"),
		GitRefsURL:       decode.String(obj, "git_refs_url"),
		TreesURL:         decode.String(obj, "trees_url"),
		StatusesURL:      decode.String(obj, "statuses_url"),
		LanguagesURL:     decode.String(obj, "languages_url"),
		StargazersURL:    decode.String(obj, "stargazers_url"),
		ContributorsURL:  decode.String(obj, "contributors_url"),
		SubscribersURL:   decode.String(obj, "subscribers_url"),
		SubscriptionURL:  decode.String(obj, "subscription_url"),
		CommitsURL:       decode.String(obj, "commits_url"),
		GitCommitsURL:    decode.String(obj, "git_commits_url"),
		CommentsURL:      decode.String(obj, "comments_url"),
		IssueCommentURL:  decode.String(obj, "issue_comment_url"),
		ContentsURL:      decode.String(obj, "contents_url"),
		CompareURL:       decode.String(obj, "compare_url"),
		MergesURL:        decode.String(obj, "merges_url"),
		ArchiveURL:       decode.String(obj, "archive_url"),
		DownloadsURL:     decode.String(obj, "downloads_url"),
		IssuesURL:        decode.String(obj, "issues_url"),
		PullsURL:         decode.String(obj, "pulls_url"),
		MilestonesURL:    decode.String(obj, "milestones_url"),
		NotificationsURL: decode.String(obj, "notifications_url"),
		LabelsURL:        decode.String(obj, "labels_url"),
		ReleasesURL:      decode.String(obj, "releases_url"),
		DeploymentsURL:   decode.String(obj, "deployments_url"),
		GitURL:           decode.String(obj, "git_url"),
		SSHURL:           decode.String(obj, "ssh_url"),
		CloneURL:         decode.String(obj, "clone_url"),
		SVNURL:           decode.String(obj, "svn_url"),
		MirrorURL:        decode.String(obj, "mirror_url"),

		Topics:     decode.Strings(obj, "topics"),
		Visibility: decode.String(obj, "visibility"),

		HasIssues:    decode.Bool(obj, "has_issues"),
		HasProjects:  decode.Bool(obj, "has_projects"),
		HasPages:     decode.Bool(obj, "has_pages"),
		HasWiki:      decode.Bool(obj, "has_wiki"),
		HasDownloads: decode.Bool(obj, "has_downloads"),
		Archived:     decode.Bool(obj, "archived"),
		Disabled:     decode.Bool(obj, "disabled"),
		IsTemplate:   decode.Bool(obj, "is_template"),

		AllowMergeCommit:    decode.Bool(obj, "allow_merge_commit"),
		AllowSquashMerge:    decode.Bool(obj, "allow_squash_merge"),
		AllowRebaseMerge:    decode.Bool(obj, "allow_rebase_merge"),
		AllowAutoMerge:      decode.Bool(obj, "allow_auto_merge"),
		DeleteBranchOnMerge: decode.Bool(obj, "delete_branch_on_merge"),
		AllowForking:        decode.Bool(obj, "allow_forking"),

		TempCloneToken: decode.String(obj, "temp_clone_token"),
		License:        decode.One(obj["license"], DecodeSimpleLicense),
		Permissions:    decode.One(obj["permissions"], DecodeRepoPermissions),
	}
}

// MinimalRepository is the reduced repository shape GitHub embeds in code
// search results and user repository listings.
type MinimalRepository struct {
	ID              *int64           `json:"id,omitempty"`
	NodeID          *string          `json:"node_id,omitempty"`
	Name            *string          `json:"name,omitempty"`
	FullName        *string          `json:"full_name,omitempty"`
	Owner           *SimpleUser      `json:"owner,omitempty"`
	Private         *bool            `json:"private,omitempty"`
	HTMLURL         *string          `json:"html_url,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Fork            *bool            `json:"fork,omitempty"`
	URL             *string          `json:"url,omitempty"`
	Language        *string          `json:"language,omitempty"`
	DefaultBranch   *string          `json:"default_branch,omitempty"`
	Visibility      *string          `json:"visibility,omitempty"`
	StargazersCount *int64           `json:"stargazers_count,omitempty"`
	WatchersCount   *int64           `json:"watchers_count,omitempty"`
	ForksCount      *int64           `json:"forks_count,omitempty"`
	OpenIssuesCount *int64           `json:"open_issues_count,omitempty"`
	Size            *int64           `json:"size,omitempty"`
	Topics          []string         `json:"topics,omitempty"`
	Archived        *bool            `json:"archived,omitempty"`
	Disabled        *bool            `json:"disabled,omitempty"`
	IsTemplate      *bool            `json:"is_template,omitempty"`
	CloneURL        *string          `json:"clone_url,omitempty"`
	SSHURL          *string          `json:"ssh_url,omitempty"`
	CreatedAt       *string          `json:"created_at,omitempty"`
	UpdatedAt       *string          `json:"updated_at,omitempty"`
	PushedAt        *string          `json:"pushed_at,omitempty"`
	License         *SimpleLicense   `json:"license,omitempty"`
	Permissions     *RepoPermissions `json:"permissions,omitempty"`
}

// DecodeMinimalRepository decodes a MinimalRepository. It returns nil for nil
// or empty input.
func DecodeMinimalRepository(obj decode.Object) *MinimalRepository {
	if len(obj) == 0 {
		return nil
	}
	return &MinimalRepository{
		ID:              decode.Int(obj, "id"),
		NodeID:          decode.String(obj, "node_id"),
		Name:            decode.String(obj, "name"),
		FullName:        decode.String(obj, "full_name"),
		Owner:           decode.One(obj["owner"], DecodeSimpleUser),
		Private:         decode.Bool(obj, "private"),
		HTMLURL:         decode.String(obj, "html_url"),
		Description:     decode.String(obj, "description"),
		Fork:            decode.Bool(obj, "fork"),
		URL:             decode.String(obj, "url"),
		Language:        decode.String(obj, "language"),
		DefaultBranch:   decode.String(obj, "default_branch"),
		Visibility:      decode.String(obj, "visibility"),
		StargazersCount: decode.Int(obj, "stargazers_count"),
		WatchersCount:   decode.Int(obj, "watchers_count"),
		ForksCount:      decode.Int(obj, "forks_count"),
		OpenIssuesCount: decode.Int(obj, "open_issues_count"),
		Size:            decode.Int(obj, "size"),
		Topics:          decode.Strings(obj, "topics"),
		Archived:        decode.Bool(obj, "archived"),
		Disabled:        decode.Bool(obj, "disabled"),
		IsTemplate:      decode.Bool(obj, "is_template"),
		CloneURL:        decode.String(obj, "clone_url"),
		SSHURL:          decode.String(obj, "ssh_url"),
		CreatedAt:       decode.String(obj, "created_at"),
		UpdatedAt:       decode.String(obj, "updated_at"),
		PushedAt:        decode.String(obj, "pushed_at"),
		License:         decode.One(obj["license"], DecodeSimpleLicense),
		Permissions:     decode.One(obj["permissions"], DecodeRepoPermissions),
	}
}

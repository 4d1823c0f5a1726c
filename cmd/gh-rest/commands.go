// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package main

import (
	"context"
	"flag"
	"strings"

	"github.com/andrewkroh/github-rest/github"
)

// result is the outcome of one command, with its payload type erased.
type result struct {
	ok      bool
	outcome any
}

func wrap[T any](o github.Outcome[T], err error) (result, error) {
	return result{ok: o.OK, outcome: o}, err
}

type runFunc func(ctx context.Context, c *github.Client, args []string) (result, error)

// command is one gh-rest subcommand. setup registers the command's flags
// on fs and returns the function that performs the call once fs is parsed.
type command struct {
	name    string
	args    []string
	summary string
	setup   func(fs *flag.FlagSet) runFunc
}

func (c command) usage() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteString(" [flags]")
	for _, a := range c.args {
		b.WriteString(" <" + a + ">")
	}
	return b.String()
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// optString registers a string flag whose value is nil unless given.
func optString(fs *flag.FlagSet, name, usage string) func() *string {
	v := fs.String(name, "", usage)
	return func() *string {
		if !isSet(fs, name) {
			return nil
		}
		return v
	}
}

// optInt registers an int flag whose value is nil unless given.
func optInt(fs *flag.FlagSet, name, usage string) func() *int {
	v := fs.Int(name, 0, usage)
	return func() *int {
		if !isSet(fs, name) {
			return nil
		}
		return v
	}
}

// optBool registers a bool flag whose value is nil unless given.
func optBool(fs *flag.FlagSet, name, usage string) func() *bool {
	v := fs.Bool(name, false, usage)
	return func() *bool {
		if !isSet(fs, name) {
			return nil
		}
		return v
	}
}

// pageFlags registers -per-page and -page.
func pageFlags(fs *flag.FlagSet) (perPage, page func() *int) {
	return optInt(fs, "per-page", "Results per page (max 100)"),
		optInt(fs, "page", "Page number to fetch")
}

func searchSetup(do func(context.Context, *github.Client, *github.SearchOptions) (result, error)) func(*flag.FlagSet) runFunc {
	return func(fs *flag.FlagSet) runFunc {
		sort := optString(fs, "sort", "Sort field")
		order := optString(fs, "order", "Sort order: asc or desc")
		perPage, page := pageFlags(fs)
		return func(ctx context.Context, c *github.Client, args []string) (result, error) {
			return do(ctx, c, &github.SearchOptions{
				Q:       args[0],
				Sort:    sort(),
				Order:   order(),
				PerPage: perPage(),
				Page:    page(),
			})
		}
	}
}

var commands = []command{
	{
		name:    "repos",
		summary: "List repositories of the authenticated user",
		setup: func(fs *flag.FlagSet) runFunc {
			visibility := optString(fs, "visibility", "all, public or private")
			affiliation := optString(fs, "affiliation", "Comma-separated owner, collaborator, organization_member")
			typ := optString(fs, "type", "all, owner, public, private or member")
			sort := optString(fs, "sort", "created, updated, pushed or full_name")
			direction := optString(fs, "direction", "asc or desc")
			since := optString(fs, "since", "Only repositories updated after this time (ISO 8601)")
			before := optString(fs, "before", "Only repositories updated before this time (ISO 8601)")
			perPage, page := pageFlags(fs)
			return func(ctx context.Context, c *github.Client, _ []string) (result, error) {
				return wrap(c.ListMyRepositories(ctx, &github.ListMyRepositoriesOptions{
					Visibility:  visibility(),
					Affiliation: affiliation(),
					Type:        typ(),
					Sort:        sort(),
					Direction:   direction(),
					PerPage:     perPage(),
					Page:        page(),
					Since:       since(),
					Before:      before(),
				}))
			}
		},
	},
	{
		name:    "user-repos",
		args:    []string{"username"},
		summary: "List public repositories of a user",
		setup: func(fs *flag.FlagSet) runFunc {
			typ := optString(fs, "type", "all, owner or member")
			sort := optString(fs, "sort", "created, updated, pushed or full_name")
			direction := optString(fs, "direction", "asc or desc")
			perPage, page := pageFlags(fs)
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.ListUserRepositories(ctx, args[0], &github.ListUserRepositoriesOptions{
					Type:      typ(),
					Sort:      sort(),
					Direction: direction(),
					PerPage:   perPage(),
					Page:      page(),
				}))
			}
		},
	},
	{
		name:    "repo",
		args:    []string{"owner", "repo"},
		summary: "Get a repository",
		setup: func(*flag.FlagSet) runFunc {
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.GetRepository(ctx, args[0], args[1]))
			}
		},
	},
	{
		name:    "update-repo",
		args:    []string{"owner", "repo"},
		summary: "Update repository settings",
		setup: func(fs *flag.FlagSet) runFunc {
			name := optString(fs, "name", "New repository name")
			description := optString(fs, "description", "Short description")
			homepage := optString(fs, "homepage", "Homepage URL")
			private := optBool(fs, "private", "Make the repository private")
			visibility := optString(fs, "visibility", "public, private or internal")
			hasIssues := optBool(fs, "has-issues", "Enable issues")
			hasProjects := optBool(fs, "has-projects", "Enable projects")
			hasWiki := optBool(fs, "has-wiki", "Enable the wiki")
			isTemplate := optBool(fs, "is-template", "Make the repository a template")
			defaultBranch := optString(fs, "default-branch", "Default branch name")
			allowSquash := optBool(fs, "allow-squash-merge", "Allow squash merging")
			allowMerge := optBool(fs, "allow-merge-commit", "Allow merge commits")
			allowRebase := optBool(fs, "allow-rebase-merge", "Allow rebase merging")
			allowAuto := optBool(fs, "allow-auto-merge", "Allow auto-merge")
			deleteBranch := optBool(fs, "delete-branch-on-merge", "Delete head branches after merge")
			allowForking := optBool(fs, "allow-forking", "Allow forking")
			archived := optBool(fs, "archived", "Archive the repository")
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.UpdateRepository(ctx, args[0], args[1], &github.UpdateRepositoryRequest{
					Name:                name(),
					Description:         description(),
					Homepage:            homepage(),
					Private:             private(),
					Visibility:          visibility(),
					HasIssues:           hasIssues(),
					HasProjects:         hasProjects(),
					HasWiki:             hasWiki(),
					IsTemplate:          isTemplate(),
					DefaultBranch:       defaultBranch(),
					AllowSquashMerge:    allowSquash(),
					AllowMergeCommit:    allowMerge(),
					AllowRebaseMerge:    allowRebase(),
					AllowAutoMerge:      allowAuto(),
					DeleteBranchOnMerge: deleteBranch(),
					AllowForking:        allowForking(),
					Archived:            archived(),
				}))
			}
		},
	},
	{
		name:    "user",
		summary: "Get the authenticated user",
		setup: func(*flag.FlagSet) runFunc {
			return func(ctx context.Context, c *github.Client, _ []string) (result, error) {
				return wrap(c.GetAuthenticatedUser(ctx))
			}
		},
	},
	{
		name:    "get-user",
		args:    []string{"username"},
		summary: "Get a user",
		setup: func(*flag.FlagSet) runFunc {
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.GetUser(ctx, args[0]))
			}
		},
	},
	{
		name:    "followers",
		args:    []string{"username"},
		summary: "List followers of a user",
		setup: func(fs *flag.FlagSet) runFunc {
			perPage, page := pageFlags(fs)
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.ListFollowers(ctx, args[0], &github.ListOptions{PerPage: perPage(), Page: page()}))
			}
		},
	},
	{
		name:    "following",
		args:    []string{"username"},
		summary: "Check whether the authenticated user follows a user",
		setup: func(*flag.FlagSet) runFunc {
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.CheckFollowing(ctx, args[0]))
			}
		},
	},
	{
		name:    "follow",
		args:    []string{"username"},
		summary: "Follow a user",
		setup: func(*flag.FlagSet) runFunc {
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.FollowUser(ctx, args[0]))
			}
		},
	},
	{
		name:    "unfollow",
		args:    []string{"username"},
		summary: "Unfollow a user",
		setup: func(*flag.FlagSet) runFunc {
			return func(ctx context.Context, c *github.Client, args []string) (result, error) {
				return wrap(c.UnfollowUser(ctx, args[0]))
			}
		},
	},
	{
		name:    "search-repos",
		args:    []string{"query"},
		summary: "Search repositories",
		setup: searchSetup(func(ctx context.Context, c *github.Client, opts *github.SearchOptions) (result, error) {
			return wrap(c.SearchRepositories(ctx, opts))
		}),
	},
	{
		name:    "search-code",
		args:    []string{"query"},
		summary: "Search code",
		setup: searchSetup(func(ctx context.Context, c *github.Client, opts *github.SearchOptions) (result, error) {
			return wrap(c.SearchCode(ctx, opts))
		}),
	},
	{
		name:    "search-users",
		args:    []string{"query"},
		summary: "Search users",
		setup: searchSetup(func(ctx context.Context, c *github.Client, opts *github.SearchOptions) (result, error) {
			return wrap(c.SearchUsers(ctx, opts))
		}),
	},
}

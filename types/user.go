// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package types

import (
	"github.com/andrewkroh/github-rest/internal/decode"
)

// SimpleUser is the abbreviated user shape GitHub embeds in other resources
// (repository owners, followers, search results).
type SimpleUser struct {
	Login             *string `json:"login,omitempty"`
	ID                *int64  `json:"id,omitempty"`
	NodeID            *string `json:"node_id,omitempty"`
	AvatarURL         *string `json:"avatar_url,omitempty"`
	GravatarID        *string `json:"gravatar_id,omitempty"`
	URL               *string `json:"url,omitempty"`
	HTMLURL           *string `json:"html_url,omitempty"`
	FollowersURL      *string `json:"followers_url,omitempty"`
	FollowingURL      *string `json:"following_url,omitempty"`
	GistsURL          *string `json:"gists_url,omitempty"`
	StarredURL        *string `json:"starred_url,omitempty"`
	SubscriptionsURL  *string `json:"subscriptions_url,omitempty"`
	OrganizationsURL  *string `json:"organizations_url,omitempty"`
	ReposURL          *string `json:"repos_url,omitempty"`
	EventsURL         *string `json:"events_url,omitempty"`
	ReceivedEventsURL *string `json:"received_events_url,omitempty"`
	Type              *string `json:"type,omitempty"`
	SiteAdmin         *bool   `json:"site_admin,omitempty"`
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	StarredAt         *string `json:"starred_at,omitempty"`
}

// DecodeSimpleUser decodes a SimpleUser. It returns nil for nil or empty input.
func DecodeSimpleUser(obj decode.Object) *SimpleUser {
	if len(obj) == 0 {
		return nil
	}
	return &SimpleUser{
		Login:             decode.String(obj, "login"),
		ID:                decode.Int(obj, "id"),
		NodeID:            decode.String(obj, "node_id"),
		AvatarURL:         decode.String(obj, "avatar_url"),
		GravatarID:        decode.String(obj, "gravatar_id"),
		URL:               decode.String(obj, "url"),
		HTMLURL:           decode.String(obj, "html_url"),
		FollowersURL:      decode.String(obj, "followers_url"),
		FollowingURL:      decode.String(obj, "following_url"),
		GistsURL:          decode.String(obj, "gists_url"),
		StarredURL:        decode.String(obj, "starred_url"),
		SubscriptionsURL:  decode.String(obj, "subscriptions_url"),
		OrganizationsURL:  decode.String(obj, "organizations_url"),
		ReposURL:          decode.String(obj, "repos_url"),
		EventsURL:         decode.String(obj, "events_url"),
		ReceivedEventsURL: decode.String(obj, "received_events_url"),
		Type:              decode.String(obj, "type"),
		SiteAdmin:         decode.Bool(obj, "site_admin"),
		Name:              decode.String(obj, "name"),
		Email:             decode.String(obj, "email"),
		StarredAt:         decode.String(obj, "starred_at"),
	}
}

// User is a public user profile as returned by GET /user and
// GET /users/{username}.
type User struct {
	SimpleUser

	Company         *string `json:"company,omitempty"`
	Blog            *string `json:"blog,omitempty"`
	Location        *string `json:"location,omitempty"`
	Hireable        *bool   `json:"hireable,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	TwitterUsername *string `json:"twitter_username,omitempty"`
	PublicRepos     *int64  `json:"public_repos,omitempty"`
	PublicGists     *int64  `json:"public_gists,omitempty"`
	Followers       *int64  `json:"followers,omitempty"`
	Following       *int64  `json:"following,omitempty"`
	CreatedAt       *string `json:"created_at,omitempty"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}

// DecodeUser decodes a User. It returns nil for nil or empty input.
func DecodeUser(obj decode.Object) *User {
	simple := DecodeSimpleUser(obj)
	if simple == nil {
		return nil
	}
	return &User{
		SimpleUser:      *simple,
		Company:         decode.String(obj, "company"),
		Blog:            decode.String(obj, "blog"),
		Location:        decode.String(obj, "location"),
		Hireable:        decode.Bool(obj, "hireable"),
		Bio:             decode.String(obj, "bio"),
		TwitterUsername: decode.String(obj, "twitter_username"),
		PublicRepos:     decode.Int(obj, "public_repos"),
		PublicGists:     decode.Int(obj, "public_gists"),
		Followers:       decode.Int(obj, "followers"),
		Following:       decode.Int(obj, "following"),
		CreatedAt:       decode.String(obj, "created_at"),
		UpdatedAt:       decode.String(obj, "updated_at"),
	}
}

// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package types

import "github.com/andrewkroh/github-rest/internal/decode"

// SimpleLicense identifies the license detected for a repository.
type SimpleLicense struct {
	Key     *string `json:"key,omitempty"`
	Name    *string `json:"name,omitempty"`
	URL     *string `json:"url,omitempty"`
	SPDXID  *string `json:"spdx_id,omitempty"`
	NodeID  *string `json:"node_id,omitempty"`
	HTMLURL *string `json:"html_url,omitempty"`
}

// DecodeSimpleLicense decodes a SimpleLicense. It returns nil for nil or
// empty input.
func DecodeSimpleLicense(obj decode.Object) *SimpleLicense {
	if len(obj) == 0 {
		return nil
	}
	return &SimpleLicense{
		Key:     decode.String(obj, "key"),
		Name:    decode.String(obj, "name"),
		URL:     decode.String(obj, "url"),
		SPDXID:  decode.String(obj, "spdx_id"),
		NodeID:  decode.String(obj, "node_id"),
		HTMLURL: decode.String(obj, "html_url"),
	}
}

// RepoPermissions are the authenticated user's permissions on a repository.
type RepoPermissions struct {
	Admin    *bool `json:"admin,omitempty"`
	Maintain *bool `json:"maintain,omitempty"`
	Push     *bool `json:"push,omitempty"`
	Triage   *bool `json:"triage,omitempty"`
	Pull     *bool `json:"pull,omitempty"`
}

// DecodeRepoPermissions decodes RepoPermissions. It returns nil for nil or
// empty input.
func DecodeRepoPermissions(obj decode.Object) *RepoPermissions {
	if len(obj) == 0 {
		return nil
	}
	return &RepoPermissions{
		Admin:    decode.Bool(obj, "admin"),
		Maintain: decode.Bool(obj, "maintain"),
		Push:     decode.Bool(obj, "push"),
		Triage:   decode.Bool(obj, "triage"),
		Pull:     decode.Bool(obj, "pull"),
	}
}

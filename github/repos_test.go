// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"testing"
)

func TestListMyRepositories_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/user/repos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query parameters, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1,"full_name":"octocat/Hello-World"},{"id":2,"full_name":"octocat/Spoon-Knife"}]`)
	})

	out, err := c.ListMyRepositories(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListMyRepositories returned error: %v", err)
	}
	repos, ok := out.Get()
	if !ok {
		t.Fatalf("expected success, got failure %+v", out.Failure)
	}
	if len(repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(repos))
	}
	for i, want := range []string{"octocat/Hello-World", "octocat/Spoon-Knife"} {
		if got := repos[i].FullName; got == nil || *got != want {
			t.Errorf("repos[%d].FullName: got %v, want %q", i, got, want)
		}
	}
}

func TestListMyRepositories_Query(t *testing.T) {
	var query map[string][]string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	opts := &ListMyRepositoriesOptions{
		Visibility: ptr("private"),
		Sort:       ptr("pushed"),
		PerPage:    ptr(50),
	}
	out, err := c.ListMyRepositories(context.Background(), opts)
	if err != nil {
		t.Fatalf("ListMyRepositories returned error: %v", err)
	}
	if !out.OK || out.Payload == nil || len(out.Payload) != 0 {
		t.Errorf("expected success with empty list, got %+v", out)
	}

	want := map[string][]string{
		"visibility": {"private"},
		"sort":       {"pushed"},
		"per_page":   {"50"},
	}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("query: got %v, want %v", query, want)
	}
}

func TestListMyRepositories_Failures(t *testing.T) {
	for _, status := range []int{http.StatusNotModified, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c := NewClient(WithHTTPClient(respond(status, `{"message":"nope"}`, nil)))
			out, err := c.ListMyRepositories(context.Background(), nil)
			if err != nil {
				t.Fatalf("ListMyRepositories returned error: %v", err)
			}
			if out.OK || out.Failure == nil {
				t.Fatalf("expected failure, got %+v", out)
			}
			if out.Failure.StatusCode != status {
				t.Errorf("StatusCode: got %d, want %d", out.Failure.StatusCode, status)
			}
			if out.Failure.Message == nil || *out.Failure.Message != "nope" {
				t.Errorf("Message: got %v, want %q", out.Failure.Message, "nope")
			}
		})
	}
}

func TestListMyRepositories_InvalidOptions(t *testing.T) {
	c := NewClient(WithHTTPClient(doerFunc(func(*http.Request) (*http.Response, error) {
		t.Error("request should not have been sent")
		return nil, errors.New("unreachable")
	})))

	_, err := c.ListMyRepositories(context.Background(), &ListMyRepositoriesOptions{PerPage: ptr(500)})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got: %v", err)
	}
}

func TestListUserRepositories(t *testing.T) {
	var seen *http.Request
	c := NewClient(WithHTTPClient(respond(http.StatusOK, `[{"id":7,"name":"dotfiles","owner":{"login":"octocat"}}]`, &seen)))

	out, err := c.ListUserRepositories(context.Background(), "octocat", &ListUserRepositoriesOptions{Type: ptr("owner")})
	if err != nil {
		t.Fatalf("ListUserRepositories returned error: %v", err)
	}
	if seen.URL.Path != "/users/octocat/repos" || seen.URL.RawQuery != "type=owner" {
		t.Errorf("unexpected URL: %s", seen.URL)
	}
	repos, ok := out.Get()
	if !ok || len(repos) != 1 {
		t.Fatalf("expected one repository, got %+v", out)
	}
	if repos[0].Owner == nil || *repos[0].Owner.Login != "octocat" {
		t.Errorf("Owner: got %+v", repos[0].Owner)
	}
}

func TestGetRepository(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/Hello-World":
			fmt.Fprint(w, `{"id":1296269,"name":"Hello-World","owner":{},"license":{"spdx_id":"MIT"},"topics":["octocat"]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	out, err := c.GetRepository(context.Background(), "octocat", "Hello-World")
	if err != nil {
		t.Fatalf("GetRepository returned error: %v", err)
	}
	repo, ok := out.Get()
	if !ok || repo == nil {
		t.Fatalf("expected repository, got %+v", out)
	}
	if *repo.ID != 1296269 {
		t.Errorf("ID: got %d, want 1296269", *repo.ID)
	}
	if repo.Owner != nil {
		t.Errorf("empty owner should decode as absent, got %+v", repo.Owner)
	}
	if repo.License == nil || *repo.License.SPDXID != "MIT" {
		t.Errorf("License: got %+v", repo.License)
	}
	if !reflect.DeepEqual(repo.Topics, []string{"octocat"}) {
		t.Errorf("Topics: got %v", repo.Topics)
	}

	out, err = c.GetRepository(context.Background(), "octocat", "missing")
	if err != nil {
		t.Fatalf("GetRepository returned error: %v", err)
	}
	if out.OK || out.Failure == nil || out.Failure.StatusCode != http.StatusNotFound || out.Failure.Body != nil {
		t.Errorf("expected bare 404 failure, got %+v", out)
	}
}

func TestUpdateRepository(t *testing.T) {
	var body map[string]any
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/repos/octocat/Hello-World" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type: got %q", ct)
		}
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &body); err != nil {
			t.Errorf("invalid request body %q: %v", data, err)
		}
		fmt.Fprint(w, `{"id":1296269,"description":"updated","has_wiki":false}`)
	})

	req := &UpdateRepositoryRequest{Description: ptr("updated"), HasWiki: ptr(false)}
	out, err := c.UpdateRepository(context.Background(), "octocat", "Hello-World", req)
	if err != nil {
		t.Fatalf("UpdateRepository returned error: %v", err)
	}

	want := map[string]any{"description": "updated", "has_wiki": false}
	if !reflect.DeepEqual(body, want) {
		t.Errorf("request body: got %v, want %v", body, want)
	}
	repo, ok := out.Get()
	if !ok || repo == nil || *repo.Description != "updated" {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestUpdateRepository_ValidationFailure(t *testing.T) {
	c := NewClient(WithHTTPClient(respond(http.StatusOK, `{}`, nil)))
	_, err := c.UpdateRepository(context.Background(), "octocat", "Hello-World", &UpdateRepositoryRequest{Visibility: ptr("hidden")})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got: %v", err)
	}
}

func TestUpdateRepository_Unprocessable(t *testing.T) {
	c := NewClient(WithHTTPClient(respond(http.StatusUnprocessableEntity,
		`{"message":"Validation Failed","errors":[{"resource":"Repository","code":"custom"}],"documentation_url":"https://docs.github.com/rest"}`, nil)))

	out, err := c.UpdateRepository(context.Background(), "octocat", "Hello-World", nil)
	if err != nil {
		t.Fatalf("UpdateRepository returned error: %v", err)
	}
	if out.OK || out.Failure == nil {
		t.Fatalf("expected failure, got %+v", out)
	}
	if _, ok := out.Failure.Body["errors"]; !ok {
		t.Errorf("expected errors in failure body, got %v", out.Failure.Body)
	}
	if got := out.Failure.Error(); got != "github: HTTP 422: Validation Failed" {
		t.Errorf("Error(): got %q", got)
	}
}

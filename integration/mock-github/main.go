// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package main implements a mock GitHub REST API server for integration
// testing. It serves the user, repository and search endpoints used by
// gh-rest from in-memory fixtures, allowing end-to-end testing without real
// GitHub credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
	"sync"
)

// user is a fixture account. Tokens map to the account they authenticate.
type user struct {
	Login     string
	ID        int64
	Name      string
	Email     string
	Followers []string
	Repos     []string
}

var users = map[string]*user{
	"octocat": {
		Login:     "octocat",
		ID:        1,
		Name:      "The Octocat",
		Email:     "octocat@github.com",
		Followers: []string{"hubot", "monalisa"},
		Repos:     []string{"Hello-World", "Spoon-Knife"},
	},
	"hubot": {
		Login: "hubot",
		ID:    2,
		Name:  "Hubot",
		Repos: []string{"hubot-scripts"},
	},
	"monalisa": {
		Login: "monalisa",
		ID:    3,
	},
}

var tokens = map[string]string{
	"octocat-token": "octocat",
	"hubot-token":   "hubot",
}

// server holds mutable state: who follows whom and repository settings.
type server struct {
	mu        sync.Mutex
	following map[string][]string
	repos     map[string]map[string]any
}

func newServer() *server {
	s := &server{
		following: map[string][]string{"octocat": {"hubot"}},
		repos:     map[string]map[string]any{},
	}
	for _, u := range users {
		for _, name := range u.Repos {
			s.repos[u.Login+"/"+name] = map[string]any{
				"id":          int64(len(s.repos) + 1000),
				"name":        name,
				"full_name":   u.Login + "/" + name,
				"owner":       simpleUser(u),
				"private":     false,
				"description": "",
				"has_wiki":    true,
				"topics":      []string{},
			}
		}
	}
	return s
}

func main() {
	listen := flag.String("listen", ":9090", "HTTP listen address")
	flag.Parse()

	s := newServer()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", s.handleAuthenticatedUser)
	mux.HandleFunc("GET /user/repos", s.handleMyRepos)
	mux.HandleFunc("GET /user/following/{username}", s.handleCheckFollowing)
	mux.HandleFunc("PUT /user/following/{username}", s.handleFollow)
	mux.HandleFunc("DELETE /user/following/{username}", s.handleUnfollow)
	mux.HandleFunc("GET /users/{username}", s.handleGetUser)
	mux.HandleFunc("GET /users/{username}/repos", s.handleUserRepos)
	mux.HandleFunc("GET /users/{username}/followers", s.handleFollowers)
	mux.HandleFunc("GET /repos/{owner}/{repo}", s.handleGetRepo)
	mux.HandleFunc("PATCH /repos/{owner}/{repo}", s.handleUpdateRepo)
	mux.HandleFunc("GET /search/repositories", s.handleSearchRepos)
	mux.HandleFunc("GET /search/users", s.handleSearchUsers)
	mux.HandleFunc("GET /search/code", s.handleSearchCode)

	log.Printf("mock-github listening on %s", *listen)
	if err := http.ListenAndServe(*listen, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// authenticate resolves the Bearer token to a user, writing a 401 when it
// cannot.
func authenticate(w http.ResponseWriter, r *http.Request) (*user, bool) {
	auth := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if !strings.HasPrefix(auth, "Bearer ") || token == "" {
		writeMessage(w, http.StatusUnauthorized, "Requires authentication")
		return nil, false
	}
	login, ok := tokens[token]
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Bad credentials")
		return nil, false
	}
	return users[login], true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"message":           msg,
		"documentation_url": "https://docs.github.com/rest",
	})
}

func simpleUser(u *user) map[string]any {
	return map[string]any{
		"login":      u.Login,
		"id":         u.ID,
		"type":       "User",
		"url":        "https://api.github.com/users/" + u.Login,
		"html_url":   "https://github.com/" + u.Login,
		"site_admin": false,
	}
}

func fullUser(u *user) map[string]any {
	m := simpleUser(u)
	if u.Name != "" {
		m["name"] = u.Name
	}
	if u.Email != "" {
		m["email"] = u.Email
	}
	m["public_repos"] = len(u.Repos)
	m["followers"] = len(u.Followers)
	m["created_at"] = "2011-01-25T18:44:36Z"
	return m
}

func (s *server) handleAuthenticatedUser(w http.ResponseWriter, r *http.Request) {
	u, ok := authenticate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, fullUser(u))
}

func (s *server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, ok := users[r.PathValue("username")]
	if !ok {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, fullUser(u))
}

func (s *server) handleFollowers(w http.ResponseWriter, r *http.Request) {
	u, ok := users[r.PathValue("username")]
	if !ok {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	out := make([]map[string]any, 0, len(u.Followers))
	for _, login := range u.Followers {
		out = append(out, simpleUser(users[login]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) reposOf(login string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []map[string]any{}
	for _, name := range users[login].Repos {
		out = append(out, s.repos[login+"/"+name])
	}
	return out
}

func (s *server) handleMyRepos(w http.ResponseWriter, r *http.Request) {
	u, ok := authenticate(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	if q.Has("type") && (q.Has("visibility") || q.Has("affiliation")) {
		writeMessage(w, http.StatusUnprocessableEntity, "Validation Failed")
		return
	}
	writeJSON(w, http.StatusOK, s.reposOf(u.Login))
}

func (s *server) handleUserRepos(w http.ResponseWriter, r *http.Request) {
	u, ok := users[r.PathValue("username")]
	if !ok {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, s.reposOf(u.Login))
}

func (s *server) handleGetRepo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	repo, ok := s.repos[r.PathValue("owner")+"/"+r.PathValue("repo")]
	s.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, repo)
}

func (s *server) handleUpdateRepo(w http.ResponseWriter, r *http.Request) {
	u, ok := authenticate(w, r)
	if !ok {
		return
	}
	owner := r.PathValue("owner")
	key := owner + "/" + r.PathValue("repo")

	s.mu.Lock()
	defer s.mu.Unlock()

	repo, ok := s.repos[key]
	if !ok {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	if u.Login != owner {
		writeMessage(w, http.StatusForbidden, "Must have admin rights to Repository.")
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, fmt.Sprintf("Problems parsing JSON: %v", err))
		return
	}
	for k, v := range patch {
		repo[k] = v
	}
	writeJSON(w, http.StatusOK, repo)
}

func (s *server) handleCheckFollowing(w http.ResponseWriter, r *http.Request) {
	u, ok := authenticate(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	follows := slices.Contains(s.following[u.Login], r.PathValue("username"))
	s.mu.Unlock()
	if !follows {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleFollow(w http.ResponseWriter, r *http.Request) {
	u, ok := authenticate(w, r)
	if !ok {
		return
	}
	target := r.PathValue("username")
	if _, exists := users[target]; !exists {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	s.mu.Lock()
	if !slices.Contains(s.following[u.Login], target) {
		s.following[u.Login] = append(s.following[u.Login], target)
	}
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	u, ok := authenticate(w, r)
	if !ok {
		return
	}
	target := r.PathValue("username")
	if _, exists := users[target]; !exists {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	s.mu.Lock()
	s.following[u.Login] = slices.DeleteFunc(s.following[u.Login], func(l string) bool { return l == target })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// searchTerm returns the free-text part of q, ignoring qualifiers such as
// language:go, or writes a 422 when q is missing.
func searchTerm(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "Validation Failed")
		return "", false
	}
	var terms []string
	for _, f := range strings.Fields(q) {
		if !strings.Contains(f, ":") {
			terms = append(terms, strings.ToLower(f))
		}
	}
	return strings.Join(terms, " "), true
}

func searchResult(items []map[string]any) map[string]any {
	return map[string]any{
		"total_count":        len(items),
		"incomplete_results": false,
		"items":              items,
	}
}

func (s *server) handleSearchRepos(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []map[string]any{}
	for key, repo := range s.repos {
		if strings.Contains(strings.ToLower(key), term) {
			item := map[string]any{"score": 1.0}
			for k, v := range repo {
				item[k] = v
			}
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b map[string]any) int {
		return strings.Compare(a["full_name"].(string), b["full_name"].(string))
	})
	writeJSON(w, http.StatusOK, searchResult(items))
}

func (s *server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(w, r)
	if !ok {
		return
	}
	items := []map[string]any{}
	for _, login := range []string{"hubot", "monalisa", "octocat"} {
		if strings.Contains(login, term) {
			item := simpleUser(users[login])
			item["score"] = 1.0
			items = append(items, item)
		}
	}
	writeJSON(w, http.StatusOK, searchResult(items))
}

func (s *server) handleSearchCode(w http.ResponseWriter, r *http.Request) {
	if _, ok := authenticate(w, r); !ok {
		return
	}
	if _, ok := searchTerm(w, r); !ok {
		return
	}
	s.mu.Lock()
	repo := s.repos["octocat/Hello-World"]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, searchResult([]map[string]any{{
		"name":       "README",
		"path":       "README",
		"sha":        "980a0d5f19a64b4b30a87d4206aade58726b60e3",
		"git_url":    "https://api.github.com/repos/octocat/Hello-World/git/blobs/980a0d5f19a64b4b30a87d4206aade58726b60e3",
		"html_url":   "https://github.com/octocat/Hello-World/blob/master/README",
		"repository": repo,
		"score":      1.0,
	}}))
}

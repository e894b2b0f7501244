package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultServerURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultServerURL)
	}

	u, err = parseBaseURL("example.com:1234")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" {
		t.Fatalf("url = %q, want http://example.com:1234", u.String())
	}

	u, err = parseBaseURL("https://example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_CRUDRoundTrip(t *testing.T) {
	t.Parallel()

	var gotCreateBody Draft
	var gotUpdateBody Draft
	var gotUpdatePath string
	var gotDeletePath string
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/recipes":
			_ = json.NewEncoder(w).Encode([]Recipe{
				{ID: 1, Title: "Toast", Ingredients: []string{"Bread"}},
				{ID: 2, Title: "Tea", Ingredients: []string{"Water", "Leaves"}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/recipes":
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotCreateBody)
			_ = json.NewEncoder(w).Encode(Recipe{
				ID:           5,
				Title:        gotCreateBody.Title,
				Ingredients:  gotCreateBody.Ingredients,
				Instructions: gotCreateBody.Instructions,
			})
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/recipes/"):
			gotUpdatePath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotUpdateBody)
			_ = json.NewEncoder(w).Encode(Recipe{
				ID:           3,
				Title:        gotUpdateBody.Title,
				Ingredients:  gotUpdateBody.Ingredients,
				Instructions: gotUpdateBody.Instructions,
			})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/recipes/"):
			gotDeletePath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	all, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 || all[1].Title != "Tea" {
		t.Fatalf("List = %#v, want 2 recipes in order", all)
	}

	created, err := c.Create(ctx, Draft{Title: "Tea", Ingredients: []string{"Water", "Leaves"}, Instructions: "Boil"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 5 || created.Title != "Tea" {
		t.Fatalf("Create = %#v, want id=5 title=Tea", created)
	}
	if len(gotCreateBody.Ingredients) != 2 || gotCreateBody.Ingredients[0] != "Water" {
		t.Fatalf("create body = %#v, want [Water Leaves]", gotCreateBody)
	}

	updated, err := c.Update(ctx, 3, Draft{Title: "Toast v2", Ingredients: []string{"Bread", "Butter"}})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != 3 || updated.Title != "Toast v2" {
		t.Fatalf("Update = %#v, want id=3 title=Toast v2", updated)
	}
	if gotUpdatePath != "/recipes/3" {
		t.Fatalf("update path = %q, want /recipes/3", gotUpdatePath)
	}

	if err := c.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if gotDeletePath != "/recipes/3" {
		t.Fatalf("delete path = %q, want /recipes/3", gotDeletePath)
	}

	if !strings.HasPrefix(gotUserAgent, "ladle/") {
		t.Fatalf("User-Agent = %q, want ladle/*", gotUserAgent)
	}
}

func TestClient_NonSuccessStatusIsRemoteError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Create(context.Background(), Draft{Title: "x"})
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("Create error = %v, want *RemoteError", err)
	}
	if remote.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want 500", remote.StatusCode)
	}

	_, err = c.List(context.Background())
	if !errors.As(err, &remote) {
		t.Fatalf("List error = %v, want *RemoteError", err)
	}
}

func TestClient_TransportFailureIsWrapped(t *testing.T) {
	// Reserved port with no listener.
	c, err := NewClient("127.0.0.1:1", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("List error = %v, want wrapped transport error", err)
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		t.Fatalf("transport failure classified as RemoteError: %v", err)
	}
}

func TestClient_UpdateAndDeleteRequireID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Update(context.Background(), 0, Draft{}); err == nil {
		t.Fatalf("Update with zero id returned nil error")
	}
	if err := c.Delete(context.Background(), 0); err == nil {
		t.Fatalf("Delete with zero id returned nil error")
	}
}

func TestClient_DecodeErrorIsWrapped(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("List error = %v, want decode response error", err)
	}
}

package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const lookupBody = `{
	"track": {
		"name": "Paranoid Android",
		"year": "1997-05-26",
		"explicit": false,
		"popularity": 78,
		"image_id": "img-ok-computer",
		"is_cover": false
	},
	"artists": [
		{"name": "Radiohead", "image_id": "img-radiohead", "genres": ["art rock", "alternative"]}
	],
	"signals": {"views": 864000, "posted_date": "2025-06-05T12:00:00Z"}
}`

func TestClientResolve(t *testing.T) {
	var requestedURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tracks" {
			http.NotFound(w, r)
			return
		}
		requestedURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(lookupBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	meta, err := client.Resolve(ctx, "https://youtu.be/abc123")
	if err != nil {
		t.Fatalf("Failed to resolve metadata: %v", err)
	}

	if requestedURL != "https://youtu.be/abc123" {
		t.Errorf("expected media URL in query, got %q", requestedURL)
	}
	if meta.Track.Name != "Paranoid Android" {
		t.Errorf("expected track name, got %q", meta.Track.Name)
	}
	if meta.Track.Popularity != 78 {
		t.Errorf("expected popularity 78, got %v", meta.Track.Popularity)
	}
	if len(meta.Artists) != 1 {
		t.Fatalf("expected 1 artist, got %d", len(meta.Artists))
	}
	if meta.Artists[0].Name != "Radiohead" {
		t.Errorf("expected artist name, got %q", meta.Artists[0].Name)
	}
	if len(meta.Artists[0].Genres) != 2 {
		t.Errorf("expected 2 genres, got %d", len(meta.Artists[0].Genres))
	}
	if meta.Signals.Views != 864000 {
		t.Errorf("expected views 864000, got %d", meta.Signals.Views)
	}
}

func TestClientResolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "lookup failed", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Resolve(context.Background(), "https://youtu.be/abc123")
	var resolutionErr *ResolutionError
	if !errors.As(err, &resolutionErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if resolutionErr.URL != "https://youtu.be/abc123" {
		t.Errorf("expected URL on error, got %q", resolutionErr.URL)
	}
}

func TestClientResolve_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Resolve(context.Background(), "https://youtu.be/abc123")
	var resolutionErr *ResolutionError
	if !errors.As(err, &resolutionErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}

func TestClientResolve_OGImageFallback(t *testing.T) {
	mediaPage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><meta property="og:image" content="https://cdn.example/art.jpg"></head><body></body></html>`))
	}))
	defer mediaPage.Close()

	lookup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"track": {"name": "Untitled", "year": "2020"},
			"artists": [{"name": "Someone"}],
			"signals": {"views": 10, "posted_date": "2025-06-05T12:00:00Z"}
		}`))
	}))
	defer lookup.Close()

	client := NewClient(lookup.URL)

	meta, err := client.Resolve(context.Background(), mediaPage.URL)
	if err != nil {
		t.Fatalf("Failed to resolve metadata: %v", err)
	}
	if meta.Track.ImageID != "https://cdn.example/art.jpg" {
		t.Errorf("expected og:image fallback, got %q", meta.Track.ImageID)
	}
}

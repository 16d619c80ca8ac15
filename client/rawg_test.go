package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRawgClient(t *testing.T) {
	if _, err := NewRawgClient(""); err == nil {
		t.Error("Expected error for empty API key")
	}

	client, err := NewRawgClient("rawg-key")
	if err != nil {
		t.Fatalf("NewRawgClient() error = %v", err)
	}
	if client.baseURL != defaultRawgBaseURL {
		t.Errorf("Expected baseURL %s, got %s", defaultRawgBaseURL, client.baseURL)
	}
}

func TestSearchGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/games" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "rawg-key" {
			t.Errorf("Expected key rawg-key, got %s", q.Get("key"))
		}
		if q.Get("search") != "hades" {
			t.Errorf("Expected search hades, got %s", q.Get("search"))
		}
		if q.Get("page_size") != "12" {
			t.Errorf("Expected page_size 12, got %s", q.Get("page_size"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"id": 1, "name": "Hades", "background_image": "https://img/hades.jpg", "released": "2020-09-17"},
				{"id": 2, "name": "Hades II", "background_image": "", "released": ""}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewRawgClient("rawg-key")
	if err != nil {
		t.Fatalf("NewRawgClient() error = %v", err)
	}
	client.baseURL = server.URL

	games, err := client.SearchGames(context.Background(), "hades")
	if err != nil {
		t.Fatalf("SearchGames() error = %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(games))
	}
	if games[0].ID != 1 || games[0].Name != "Hades" {
		t.Errorf("Unexpected first result: %+v", games[0])
	}
	if games[0].ImageURL != "https://img/hades.jpg" {
		t.Errorf("Unexpected image URL: %s", games[0].ImageURL)
	}
	if games[0].ReleaseDate != "2020-09-17" {
		t.Errorf("Unexpected release date: %s", games[0].ReleaseDate)
	}
}

func TestSearchGamesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewRawgClient("bad-key")
	if err != nil {
		t.Fatalf("NewRawgClient() error = %v", err)
	}
	client.baseURL = server.URL

	if _, err := client.SearchGames(context.Background(), "hades"); err == nil {
		t.Error("Expected error for non-OK upstream status")
	}
}

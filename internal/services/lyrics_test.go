package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLyricsService(t *testing.T) {
	ctx := context.Background()

	t.Run("NewLyricsService uses default URL", func(t *testing.T) {
		if svc := NewLyricsService("", nil, nil); svc.baseURL != defaultLyricsBaseURL {
			t.Errorf("expected baseURL to be %s, got %s", defaultLyricsBaseURL, svc.baseURL)
		}
	})

	t.Run("Fetch returns lyrics", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/Imagine Dragons/Believer" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"lyrics": "First things first..."}`))
		}))
		defer server.Close()

		svc := NewLyricsService(server.URL, server.Client(), nil)

		text, ok := svc.Fetch(ctx, "Imagine Dragons", "Believer")
		if !ok {
			t.Fatal("expected lyrics to be found")
		}
		if text != "First things first..." {
			t.Errorf("unexpected lyrics %q", text)
		}
	})

	t.Run("Fetch is fail-soft", func(t *testing.T) {
		t.Run("on 404", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error": "No lyrics found"}`, http.StatusNotFound)
			}))
			defer server.Close()

			svc := NewLyricsService(server.URL, server.Client(), nil)
			if _, ok := svc.Fetch(ctx, "Imagine Dragons", "NoSuchSongXYZ"); ok {
				t.Error("expected lyrics to be unavailable")
			}
		})

		t.Run("on malformed body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			}))
			defer server.Close()

			svc := NewLyricsService(server.URL, server.Client(), nil)
			if _, ok := svc.Fetch(ctx, "a", "b"); ok {
				t.Error("expected lyrics to be unavailable")
			}
		})

		t.Run("on missing lyrics field", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			svc := NewLyricsService(server.URL, server.Client(), nil)
			if _, ok := svc.Fetch(ctx, "a", "b"); ok {
				t.Error("expected lyrics to be unavailable")
			}
		})

		t.Run("on transport error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			server.Close()

			svc := NewLyricsService(server.URL, http.DefaultClient, nil)
			if _, ok := svc.Fetch(ctx, "a", "b"); ok {
				t.Error("expected lyrics to be unavailable")
			}
		})
	})
}

package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contentchat/contentchat"
)

func TestFetchWebpage(t *testing.T) {
	t.Run("StripsNonTextNodes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><head>
				<style>body { color: red }</style>
				<script>var tracking = true;</script>
			</head><body>
				<h1>Title</h1>
				<p>First paragraph.</p>
				<noscript>enable javascript</noscript>
				<p>Second   paragraph.</p>
			</body></html>`)
		}))
		defer srv.Close()

		text, err := NewFetcher().FetchWebpage(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("FetchWebpage failed: %v", err)
		}
		if text != "Title First paragraph. Second paragraph." {
			t.Fatalf("extracted %q", text)
		}
	})

	t.Run("EmptyExtraction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><head><script>only();</script></head><body></body></html>`)
		}))
		defer srv.Close()

		_, err := NewFetcher().FetchWebpage(context.Background(), srv.URL)
		if !errors.Is(err, contentchat.ErrEmptyExtraction) {
			t.Fatalf("expected ErrEmptyExtraction, got %v", err)
		}
		if !errors.Is(err, contentchat.ErrContentUnavailable) {
			t.Fatalf("empty extraction must classify as content unavailable")
		}
	})

	t.Run("HTTPFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewFetcher().FetchWebpage(context.Background(), srv.URL)
		if !errors.Is(err, contentchat.ErrContentUnavailable) {
			t.Fatalf("expected ErrContentUnavailable, got %v", err)
		}
	})
}

func watchPage(tracks string) string {
	return `<html><script>var ytInitialPlayerResponse = {"captions":` +
		`{"playerCaptionsTracklistRenderer":{"captionTracks":[` + tracks + `]}}` +
		`,"videoDetails":{"videoId":"x"}};</script></html>`
}

func TestCaptionTrackURL(t *testing.T) {
	t.Run("PrefersConfiguredLanguages", func(t *testing.T) {
		page := watchPage(
			`{"baseUrl":"https://example.com/fr","languageCode":"fr"},` +
				`{"baseUrl":"https://example.com/en","languageCode":"en"},` +
				`{"baseUrl":"https://example.com/de","languageCode":"de"}`)

		url, err := captionTrackURL(page)
		if err != nil {
			t.Fatalf("captionTrackURL failed: %v", err)
		}
		if url != "https://example.com/de" {
			t.Fatalf("picked %q, want the de track", url)
		}
	})

	t.Run("FallsBackToFirstTrack", func(t *testing.T) {
		page := watchPage(`{"baseUrl":"https://example.com/fr","languageCode":"fr"}`)

		url, err := captionTrackURL(page)
		if err != nil {
			t.Fatalf("captionTrackURL failed: %v", err)
		}
		if url != "https://example.com/fr" {
			t.Fatalf("picked %q", url)
		}
	})

	t.Run("NoCaptionsBlock", func(t *testing.T) {
		page := `<html><script>var ytInitialPlayerResponse = {"videoDetails":{}};</script></html>`

		_, err := captionTrackURL(page)
		if !errors.Is(err, contentchat.ErrTranscriptsDisabled) {
			t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
		}
	})

	t.Run("EmptyTrackList", func(t *testing.T) {
		_, err := captionTrackURL(watchPage(""))
		if !errors.Is(err, contentchat.ErrTranscriptsDisabled) {
			t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
		}
	})
}

func TestJoinTranscript(t *testing.T) {
	raw := `<?xml version="1.0" encoding="utf-8" ?><transcript>
		<text start="0.0" dur="1.5">Hello &amp; welcome</text>
		<text start="1.5" dur="2.0">  to the show  </text>
		<text start="3.5" dur="0.5"></text>
	</transcript>`

	text, err := joinTranscript(raw)
	if err != nil {
		t.Fatalf("joinTranscript failed: %v", err)
	}
	if text != "Hello & welcome to the show" {
		t.Fatalf("joined %q", text)
	}
}

func TestFetchVideo(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/track", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text start="0" dur="1">erste zeile</text><text start="1" dur="1">zweite zeile</text></transcript>`)
	})
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "abc123" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, watchPage(`{"baseUrl":"`+srv.URL+`/track","languageCode":"de"}`))
	})

	f := NewFetcher()
	f.watchBase = srv.URL + "/watch?v="

	text, err := f.FetchVideo(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("FetchVideo failed: %v", err)
	}
	if text != "erste zeile zweite zeile" {
		t.Fatalf("transcript = %q", text)
	}

	t.Run("UnknownVideo", func(t *testing.T) {
		_, err := f.FetchVideo(context.Background(), "missing")
		if !errors.Is(err, contentchat.ErrContentUnavailable) {
			t.Fatalf("expected ErrContentUnavailable, got %v", err)
		}
	})

	t.Run("DisabledTranscripts", func(t *testing.T) {
		mux.HandleFunc("/nocaptions", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><script>var x = {"videoDetails":{}};</script></html>`)
		})
		disabled := NewFetcher()
		disabled.watchBase = srv.URL + "/nocaptions?v="

		_, err := disabled.FetchVideo(context.Background(), "abc123")
		if !errors.Is(err, contentchat.ErrTranscriptsDisabled) {
			t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
		}
	})
}

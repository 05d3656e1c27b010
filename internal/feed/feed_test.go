package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"castfetch/internal/feed"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>TestCast</title>
    <item>
      <title>Episode One</title>
      <pubDate>Mon, 01 Jan 2024 10:00:00 +0000</pubDate>
      <enclosure url="http://x/ep1.mp3" length="123" type="audio/mpeg"/>
    </item>
    <item>
      <title>Episode Two</title>
      <link>http://x/ep2.mp3</link>
    </item>
  </channel>
</rss>`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchParsesEntries(t *testing.T) {
	srv := serve(t, http.StatusOK, sampleRSS)
	client := feed.NewHTTPClient(5 * time.Second)

	f, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if f.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", f.StatusCode)
	}
	if len(f.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(f.Entries))
	}

	first := f.Entries[0]
	if first.Title != "Episode One" {
		t.Fatalf("title = %q", first.Title)
	}
	if first.PublishedAt == nil {
		t.Fatal("expected parsed published date")
	}
	if got := first.PublishedAt.UTC().Format("2006-01-02"); got != "2024-01-01" {
		t.Fatalf("published date = %s", got)
	}
	if len(first.Enclosures) == 0 || first.Enclosures[len(first.Enclosures)-1].URL != "http://x/ep1.mp3" {
		t.Fatalf("unexpected enclosures: %#v", first.Enclosures)
	}

	second := f.Entries[1]
	if len(second.Enclosures) != 1 || second.Enclosures[0].URL != "http://x/ep2.mp3" {
		t.Fatalf("expected link carried as enclosure, got %#v", second.Enclosures)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := serve(t, http.StatusNotFound, "gone")
	client := feed.NewHTTPClient(5 * time.Second)

	f, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if f.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", f.StatusCode)
	}
	if len(f.Entries) != 0 {
		t.Fatalf("expected no entries for non-200 response, got %d", len(f.Entries))
	}
}

func TestFetchMalformedDocument(t *testing.T) {
	srv := serve(t, http.StatusOK, "this is not xml {")
	client := feed.NewHTTPClient(5 * time.Second)

	_, err := client.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, feed.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := serve(t, http.StatusOK, sampleRSS)
	url := srv.URL
	srv.Close()

	client := feed.NewHTTPClient(time.Second)
	if _, err := client.Fetch(context.Background(), url); err == nil {
		t.Fatal("expected transport error")
	}
}

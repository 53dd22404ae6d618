// client_test.go — Tests for the Data API client against a local fake.
//
// Go Pattern: The generated API client accepts an endpoint override, so we
// point it at an httptest.Server that serves canned Data API JSON. This
// exercises the real wire decoding (including the numeric-string counters)
// without touching the network.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

// newTestClient builds a Client whose requests land on handler.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "test-key",
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	return c, srv
}

// commentPage renders a commentThreads page with n comments starting at a
// given ordinal, plus an optional continuation token.
func commentPage(start, n int, nextToken string) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(
			`{"snippet":{"topLevelComment":{"snippet":{"textDisplay":"comment %d","authorDisplayName":"author %d"}}}}`,
			start+i, start+i))
	}
	page := `{"items":[` + strings.Join(items, ",") + `]`
	if nextToken != "" {
		page += `,"nextPageToken":"` + nextToken + `"`
	}
	return page + `}`
}

func TestVideoMetadata(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "videos") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "dQw4w9WgXcQ" {
			t.Errorf("id param = %q, want dQw4w9WgXcQ", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// Counters arrive as numeric strings on the wire; the client
		// library coerces them to uint64.
		fmt.Fprint(w, `{"items":[{
			"snippet":{"title":"Test Video","description":"A video","publishedAt":"2024-03-01T12:00:00Z","channelTitle":"Test Channel"},
			"statistics":{"viewCount":"30000","likeCount":"1500","commentCount":"250"}
		}]}`)
	})
	c, _ := newTestClient(t, handler)

	meta, err := c.VideoMetadata(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("VideoMetadata() unexpected error: %v", err)
	}

	if meta.Title != "Test Video" {
		t.Errorf("Title = %q, want %q", meta.Title, "Test Video")
	}
	if meta.ChannelName != "Test Channel" {
		t.Errorf("ChannelName = %q, want %q", meta.ChannelName, "Test Channel")
	}
	if meta.Views != 30000 {
		t.Errorf("Views = %d, want 30000", meta.Views)
	}
	if meta.Likes != 1500 {
		t.Errorf("Likes = %d, want 1500", meta.Likes)
	}
	if meta.CommentCount != 250 {
		t.Errorf("CommentCount = %d, want 250", meta.CommentCount)
	}
}

func TestVideoMetadata_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Unknown IDs come back as an empty item list, not an HTTP error.
		fmt.Fprint(w, `{"items":[]}`)
	})
	c, _ := newTestClient(t, handler)

	_, err := c.VideoMetadata(context.Background(), "aaaaaaaaaaa")
	if !errors.Is(err, ErrVideoNotFound) {
		t.Errorf("VideoMetadata() error = %v, want ErrVideoNotFound", err)
	}
}

func TestComments_ZeroCapMakesNoRequests(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	})
	c, _ := newTestClient(t, handler)

	comments, err := c.Comments(context.Background(), "dQw4w9WgXcQ", 0)
	if err != nil {
		t.Fatalf("Comments() unexpected error: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("len(comments) = %d, want 0", len(comments))
	}
	if requests != 0 {
		t.Errorf("page requests = %d, want 0", requests)
	}
}

func TestComments_StopsWhenSourceExhausted(t *testing.T) {
	// 250 comments across three pages, then no continuation token.
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("pageToken") {
		case "":
			fmt.Fprint(w, commentPage(1, 100, "page2"))
		case "page2":
			fmt.Fprint(w, commentPage(101, 100, "page3"))
		case "page3":
			fmt.Fprint(w, commentPage(201, 50, "")) // final page, no token
		default:
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
		}
	})
	c, _ := newTestClient(t, handler)

	comments, err := c.Comments(context.Background(), "dQw4w9WgXcQ", 1000)
	if err != nil {
		t.Fatalf("Comments() unexpected error: %v", err)
	}
	if len(comments) != 250 {
		t.Errorf("len(comments) = %d, want 250", len(comments))
	}
	if requests != 3 {
		t.Errorf("page requests = %d, want 3", requests)
	}

	// Insertion order preserved: page order, then in-page order.
	if comments[0].TextDisplay != "comment 1" {
		t.Errorf("first comment = %q, want %q", comments[0].TextDisplay, "comment 1")
	}
	if comments[249].TextDisplay != "comment 250" {
		t.Errorf("last comment = %q, want %q", comments[249].TextDisplay, "comment 250")
	}
	if comments[0].AuthorDisplayName != "author 1" {
		t.Errorf("first author = %q, want %q", comments[0].AuthorDisplayName, "author 1")
	}
}

func TestComments_StopsAtCapAndTrims(t *testing.T) {
	// The source always offers another page; the cap must stop the loop.
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		start := (requests-1)*100 + 1
		fmt.Fprint(w, commentPage(start, 100, fmt.Sprintf("page%d", requests+1)))
	})
	c, _ := newTestClient(t, handler)

	comments, err := c.Comments(context.Background(), "dQw4w9WgXcQ", 150)
	if err != nil {
		t.Fatalf("Comments() unexpected error: %v", err)
	}
	if len(comments) != 150 {
		t.Errorf("len(comments) = %d, want exactly 150", len(comments))
	}
	if requests != 2 {
		t.Errorf("page requests = %d, want 2", requests)
	}
	// Trimmed to the first 150 — the 50 overshoot comments are dropped.
	if comments[149].TextDisplay != "comment 150" {
		t.Errorf("last comment = %q, want %q", comments[149].TextDisplay, "comment 150")
	}
}

func TestComments_TenPagesForFullCap(t *testing.T) {
	// commentCount 5000 caps at 1000 → exactly ⌈1000/100⌉ = 10 page requests.
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		start := (requests-1)*100 + 1
		fmt.Fprint(w, commentPage(start, 100, fmt.Sprintf("page%d", requests+1)))
	})
	c, _ := newTestClient(t, handler)

	comments, err := c.Comments(context.Background(), "ABCDEFGHIJK", 1000)
	if err != nil {
		t.Fatalf("Comments() unexpected error: %v", err)
	}
	if len(comments) != 1000 {
		t.Errorf("len(comments) = %d, want 1000", len(comments))
	}
	if requests != 10 {
		t.Errorf("page requests = %d, want 10", requests)
	}
}

func TestComments_PageErrorAborts(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 2 {
			http.Error(w, `{"error":{"code":500,"message":"backend error"}}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, commentPage(1, 100, "page2"))
	})
	c, _ := newTestClient(t, handler)

	_, err := c.Comments(context.Background(), "dQw4w9WgXcQ", 1000)
	if err == nil {
		t.Fatal("Comments() should fail when a page request fails")
	}
	if requests != 2 {
		t.Errorf("page requests = %d, want 2 (no retry)", requests)
	}
}

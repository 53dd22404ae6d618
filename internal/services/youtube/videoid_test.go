// videoid_test.go — Unit tests for video ID extraction.
//
// Go Pattern: Table-driven tests are the standard Go pattern for testing
// multiple inputs. Define a slice of test cases, then loop through them.
package youtube

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		// Canonical URL shapes
		{
			name:   "standard watch URL",
			input:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "watch URL without www",
			input:  "https://youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "watch URL with extra params",
			input:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLx&index=2",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "youtu.be short URL",
			input:  "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "ID with dashes and underscores",
			input:  "https://www.youtube.com/watch?v=a-B_c1D2e3F",
			wantID: "a-B_c1D2e3F",
		},
		{
			name:   "leading and trailing whitespace",
			input:  "  https://youtu.be/dQw4w9WgXcQ  ",
			wantID: "dQw4w9WgXcQ",
		},

		// "No identifier" cases — extraction is total, never panics
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unrelated URL",
			input:   "https://www.google.com",
			wantErr: true,
		},
		{
			name:    "bare video ID without URL shape",
			input:   "dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "ID too short",
			input:   "https://youtu.be/abc",
			wantErr: true,
		},
		{
			name:    "garbage input",
			input:   "!!!???###\x00\x01",
			wantErr: true,
		},
		{
			name:    "very long garbage",
			input:   strings.Repeat("v=", 10000),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrNoVideoID) {
					t.Errorf("ExtractVideoID(%q) error = %v, want ErrNoVideoID", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ExtractVideoID(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.wantID {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.wantID)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got != want {
		t.Errorf("WatchURL() = %q, want %q", got, want)
	}
}

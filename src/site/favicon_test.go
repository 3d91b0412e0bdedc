package site

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>X</title>
</head>
<body></body>
</html>
`

const wantLink = `<link rel="icon" type="image/png" href="favicon.png">`

func writeHTML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func readHTML(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	return string(data)
}

func TestInjectFavicon(t *testing.T) {
	path := writeHTML(t, testHTML)

	if err := InjectFavicon(path, "favicon.png", "image/png"); err != nil {
		t.Fatalf("InjectFavicon failed: %v", err)
	}

	html := readHTML(t, path)
	if n := strings.Count(html, wantLink); n != 1 {
		t.Fatalf("Expected 1 favicon link, got %d", n)
	}

	lines := strings.Split(html, "\n")
	for i, line := range lines {
		if strings.Contains(line, "<title>") {
			if i == 0 {
				t.Fatal("Expected a line before <title>")
			}
			if strings.TrimSpace(lines[i-1]) != wantLink {
				t.Errorf("Expected favicon link right before <title>, got %q", lines[i-1])
			}
			if line != "  <title>X</title>" {
				t.Errorf("Unexpected title line %q", line)
			}
		}
	}
}

func TestInjectFaviconTwiceDuplicates(t *testing.T) {
	path := writeHTML(t, testHTML)

	for i := 0; i < 2; i++ {
		if err := InjectFavicon(path, "favicon.png", "image/png"); err != nil {
			t.Fatalf("InjectFavicon run %d failed: %v", i+1, err)
		}
	}

	if n := strings.Count(readHTML(t, path), wantLink); n != 2 {
		t.Errorf("Expected 2 duplicate favicon links, got %d", n)
	}
}

func TestInjectFaviconMissingFile(t *testing.T) {
	err := InjectFavicon(filepath.Join(t.TempDir(), "missing.html"), "favicon.png", "image/png")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestInsertFavicon(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		want   string
		wantOK bool
	}{
		{
			name:   "single title",
			html:   "<head>\n<title>A</title>",
			want:   "<head>\n  " + wantLink + "\n  <title>A</title>",
			wantOK: true,
		},
		{
			name:   "only first title",
			html:   "<title>A</title><svg><title>B</title></svg>",
			want:   "  " + wantLink + "\n  <title>A</title><svg><title>B</title></svg>",
			wantOK: true,
		},
		{
			name:   "no title",
			html:   "<head></head>",
			want:   "<head></head>",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InsertFavicon(tt.html, "favicon.png", "image/png")
			if ok != tt.wantOK {
				t.Errorf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFaviconTagWithoutType(t *testing.T) {
	if got := FaviconTag("favicon.ico", ""); got != "  <link rel=\"icon\" href=\"favicon.ico\">\n" {
		t.Errorf("Unexpected tag %q", got)
	}
}

package site

import (
	"fmt"
	"log"
	"os"
	"strings"
)

const titleTag = "<title>"

// FaviconTag returns the link line inserted in front of <title>
func FaviconTag(href, mimeType string) string {
	if mimeType == "" {
		return fmt.Sprintf("  <link rel=\"icon\" href=%q>\n", href)
	}
	return fmt.Sprintf("  <link rel=\"icon\" type=%q href=%q>\n", mimeType, href)
}

// InsertFavicon puts the favicon link line before the first <title>.
// It reports false when the document has no <title>.
// There is no check for an existing link, so repeated calls add duplicates.
func InsertFavicon(html, href, mimeType string) (string, bool) {
	if !strings.Contains(html, titleTag) {
		return html, false
	}
	return strings.Replace(html, titleTag, FaviconTag(href, mimeType)+"  "+titleTag, 1), true
}

// InjectFavicon rewrites the HTML file at path in place with InsertFavicon.
// A missing file yields an error wrapping fs.ErrNotExist.
func InjectFavicon(path, href, mimeType string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read html: %w", err)
	}

	html, ok := InsertFavicon(string(data), href, mimeType)
	if !ok {
		log.Printf("⚠️  No %s tag in %s, favicon link not added", titleTag, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat html: %w", err)
	}

	if err := os.WriteFile(path, []byte(html), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write html: %w", err)
	}

	return nil
}

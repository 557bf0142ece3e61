package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// coverNames lists album art file names in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindCover returns the album art next to the audio file at path, matching
// names case-insensitively, or "" when there is none.
func FindCover(path string) string {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	byLower := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			byLower[strings.ToLower(e.Name())] = e.Name()
		}
	}
	for _, name := range coverNames {
		if found, ok := byLower[name]; ok {
			return filepath.Join(dir, found)
		}
	}
	return ""
}

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EmojiIndex maps an emoji numeric id to a local asset path inside the
// package. Built once before the concurrent phase, read-only afterwards,
// safe to share without locking.
type EmojiIndex map[string]string

// IndexEmojiAssets walks Servers/*/emoji and records every file whose
// name (sans extension) is entirely numeric. A missing Servers folder
// yields an empty, usable index.
func IndexEmojiAssets(root string) EmojiIndex {
	index := make(EmojiIndex)
	serverDirs, err := os.ReadDir(filepath.Join(root, "Servers"))
	if err != nil {
		return index
	}
	for _, server := range serverDirs {
		if !server.IsDir() {
			continue
		}
		emojiDir := filepath.Join(root, "Servers", server.Name(), "emoji")
		files, err := os.ReadDir(emojiDir)
		if err != nil {
			continue
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			name := file.Name()
			id := strings.TrimSuffix(name, filepath.Ext(name))
			if id == "" || !isNumeric(id) {
				continue
			}
			index[id] = filepath.Join(emojiDir, name)
		}
	}
	return index
}

// URL resolves the display URL for an emoji id: a local package asset
// when indexed, otherwise the CDN template. Nothing is ever fetched here.
func (idx EmojiIndex) URL(id string, animated bool) string {
	if local, ok := idx[id]; ok {
		return "file://" + local
	}
	ext := "png"
	if animated {
		ext = "gif"
	}
	return fmt.Sprintf("https://cdn.discordapp.com/emojis/%s.%s?size=96&quality=lossless", id, ext)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

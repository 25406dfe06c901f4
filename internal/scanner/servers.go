package scanner

import (
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"
)

// loadServerIndex reads the guild id to display name index. Both folder
// spellings appear in the wild.
func loadServerIndex(root string) map[string]string {
	for _, folder := range []string{"Servers", "servers"} {
		data, err := os.ReadFile(filepath.Join(root, folder, "index.json"))
		if err != nil {
			continue
		}
		var index map[string]string
		if err := json.Unmarshal(data, &index); err != nil {
			continue
		}
		return index
	}
	return nil
}

// loadDMIndex reads the DM channel id to display name index from the
// flat messages folder.
func loadDMIndex(root string) map[string]string {
	for _, folder := range []string{"messages", "Messages"} {
		data, err := os.ReadFile(filepath.Join(root, folder, "index.json"))
		if err != nil {
			continue
		}
		var index map[string]string
		if err := json.Unmarshal(data, &index); err != nil {
			continue
		}
		return index
	}
	return nil
}

func sortedServerNames(index map[string]string) []string {
	names := make([]string, 0, len(index))
	for _, name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

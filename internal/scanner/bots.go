package scanner

import (
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"dpscan/internal/models"
)

// parseBots reads the third-party application descriptors under the
// account folder. Tokens and keys present in the export stay out of the
// snapshot.
func parseBots(root string) []models.BotApp {
	var bots []models.BotApp
	for _, folder := range accountFolders {
		appsDir := filepath.Join(root, folder, "applications")
		entries, err := os.ReadDir(appsDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(appsDir, entry.Name(), "application.json"))
			if err != nil {
				continue
			}
			var raw botSchema
			if err := json.Unmarshal(data, &raw); err != nil {
				continue
			}
			id := cast.ToString(raw.ID)
			if id == "" {
				id = entry.Name()
			}
			bots = append(bots, models.BotApp{
				ID:          id,
				Name:        raw.Name,
				Description: raw.Description,
				Icon:        raw.Icon,
			})
		}
		break
	}
	sort.Slice(bots, func(i, j int) bool { return bots[i].Name < bots[j].Name })
	return bots
}

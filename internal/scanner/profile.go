package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"dpscan/internal/models"
)

// accountFolders lists the candidate account subfolder names, in trial
// order. Localized exports rename the folder ("Compte" etc.).
var accountFolders = []string{"Account", "account", "Compte"}

const confirmedPaymentStatus = 1

var avatarExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ParseProfile reads the account profile from the first candidate folder
// holding a readable user.json. A missing or unreadable profile is not an
// error; the scan simply carries no profile.
func ParseProfile(root string) *models.AccountProfile {
	for _, folder := range accountFolders {
		data, err := os.ReadFile(filepath.Join(root, folder, "user.json"))
		if err != nil {
			continue
		}
		var raw userSchema
		if err := json.Unmarshal(data, &raw); err != nil {
			continue
		}

		profile := buildProfile(&raw)
		profile.RecentAvatars = scanRecentAvatars(filepath.Join(root, folder, "recent_avatars"))
		return profile
	}
	return nil
}

func buildProfile(raw *userSchema) *models.AccountProfile {
	profile := &models.AccountProfile{
		ID:            cast.ToString(raw.ID),
		Username:      raw.Username,
		Discriminator: cast.ToString(raw.Discriminator),
		GlobalName:    raw.GlobalName,
		Email:         raw.Email,
		Phone:         raw.Phone,
		AvatarHash:    raw.AvatarHash,
		PremiumType:   cast.ToInt(raw.PremiumType),
		Flags:         cast.ToInt(raw.Flags),
		TotalSpent:    make(map[string]float64),
	}
	if profile.Username == "" {
		profile.Username = "Discord User"
	}

	for _, conn := range raw.Connections {
		if conn.Type == "" || conn.Name == "" || conn.Type == "contacts" {
			continue
		}
		profile.Connections = append(profile.Connections, models.Connection{Type: conn.Type, Name: conn.Name})
	}

	for _, rel := range raw.Relationships {
		switch cast.ToInt(rel.Type) {
		case 1:
			profile.FriendCount++
		case 2:
			profile.BlockedCount++
		}
	}

	for _, p := range raw.Payments {
		if cast.ToInt(p.Status) != confirmedPaymentStatus {
			continue
		}
		payment := models.Payment{
			Amount:    cast.ToInt(p.Amount),
			Currency:  p.Currency,
			Status:    confirmedPaymentStatus,
			Timestamp: p.CreatedAt,
		}
		profile.Payments = append(profile.Payments, payment)
		profile.PaymentCount++
		if payment.Currency != "" {
			// Amounts are exported in minor units.
			profile.TotalSpent[payment.Currency] += float64(payment.Amount) / 100.0
		}
	}

	return profile
}

// scanRecentAvatars collects image files from the avatar history folder,
// newest first. Filenames encode recency, so a descending name sort is a
// descending time sort.
func scanRecentAvatars(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var avatars []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !avatarExtensions[ext] {
			continue
		}
		avatars = append(avatars, filepath.Join(dir, entry.Name()))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(avatars)))
	return avatars
}

package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"dpscan/internal/models"
)

// parseAnalytics counts activity events by event-name occurrence in the
// raw analytics dump. The dump is newline-delimited JSON that can reach
// hundreds of megabytes; substring counting stays tolerant of every
// schema drift the file has gone through.
func parseAnalytics(root string) models.AnalyticsStats {
	var stats models.AnalyticsStats
	for _, folder := range []string{"Activity", "activity"} {
		for _, file := range []string{"analytics.json", "reporting.json"} {
			data, err := os.ReadFile(filepath.Join(root, folder, file))
			if err != nil {
				continue
			}
			content := string(data)
			stats.AppOpened = strings.Count(content, "app_opened")
			stats.VoiceChannelJoins = strings.Count(content, "join_voice_channel")
			stats.CallsJoined = strings.Count(content, "join_call")
			stats.ReactionsAdded = strings.Count(content, "add_reaction")
			stats.MessagesEdited = strings.Count(content, "message_edited")
			stats.MessagesDeleted = strings.Count(content, "message_deleted")
			stats.SlashCommandsUsed = strings.Count(content, "slash_command_used")
			stats.NotificationsClicked = strings.Count(content, "notification_clicked")
			stats.InvitesSent = strings.Count(content, "invite_sent")
			stats.GiftsSent = strings.Count(content, "gift_code_sent")
			stats.SearchesStarted = strings.Count(content, "search_started")
			stats.AppCrashes = strings.Count(content, "app_crashed")
			return stats
		}
	}
	return stats
}

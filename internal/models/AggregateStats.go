package models

import "time"

// DetailedStats is the per-scope drill-down kept for the top servers and
// DM conversations.
type DetailedStats struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Messages int    `json:"messages"`
	Words    int    `json:"words"`
	Chars    int    `json:"chars"`
	Emotes   int    `json:"emotes"`
	Mentions int    `json:"mentions"`

	TopWords     RankedList `json:"top_words"`
	TopEmojis    RankedList `json:"top_emojis"`
	TopProfanity RankedList `json:"top_profanity"`
	TopLinks     RankedList `json:"top_links"`
	TopInvites   RankedList `json:"top_invites"`
}

// AnalyticsStats holds event counts taken from the activity log, counted
// by event-name occurrence the way the official package explorer does.
type AnalyticsStats struct {
	AppOpened            int `json:"app_opened"`
	VoiceChannelJoins    int `json:"voice_channel_joins"`
	CallsJoined          int `json:"calls_joined"`
	ReactionsAdded       int `json:"reactions_added"`
	MessagesEdited       int `json:"messages_edited"`
	MessagesDeleted      int `json:"messages_deleted"`
	SlashCommandsUsed    int `json:"slash_commands_used"`
	NotificationsClicked int `json:"notifications_clicked"`
	InvitesSent          int `json:"invites_sent"`
	GiftsSent            int `json:"gifts_sent"`
	SearchesStarted      int `json:"searches_started"`
	AppCrashes           int `json:"app_crashes"`
}

type Ticket struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Subject      string `json:"subject"`
	CreatedAt    string `json:"created_at"`
	MessageCount int    `json:"message_count"`
}

type TicketStats struct {
	Count    int            `json:"count"`
	ByStatus map[string]int `json:"by_status"`
	Tickets  []Ticket       `json:"tickets"`
}

// BotApp describes a third-party application folder. Secrets present in
// the export (bot token, public key) are never carried into the snapshot.
type BotApp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// AggregateStats is the final snapshot of one scan. It is assembled once,
// published atomically and immutable to every consumer afterwards.
type AggregateStats struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Root        string        `json:"root"`
	Elapsed     time.Duration `json:"elapsed"`

	Profile *AccountProfile `json:"profile,omitempty"`

	ServerCount int      `json:"server_count"`
	ServerNames []string `json:"server_names"`

	Messages        int `json:"messages"`
	Words           int `json:"words"`
	Chars           int `json:"chars"`
	Emotes          int `json:"emotes"`
	Mentions        int `json:"mentions"`
	FilesUploaded   int `json:"files_uploaded"`
	ServerMessages  int `json:"server_messages"`
	DMMessages      int `json:"dm_messages"`
	DMConversations int `json:"dm_conversations"`

	Histograms Histograms `json:"histograms"`

	TopWords     RankedList   `json:"top_words"`
	TopLinks     RankedList   `json:"top_links"`
	TopInvites   RankedList   `json:"top_invites"`
	TopProfanity RankedList   `json:"top_profanity"`
	TopEmojis    []EmojiEntry `json:"top_emojis"`
	TopServers   RankedList   `json:"top_servers"`
	TopDMs       RankedList   `json:"top_dms"`

	ServerDetails []DetailedStats `json:"server_details"`
	DMDetails     []DetailedStats `json:"dm_details"`

	Analytics AnalyticsStats `json:"analytics"`
	Tickets   TicketStats    `json:"tickets"`
	Bots      []BotApp       `json:"bots"`
}

func (s *AggregateStats) MostActiveHour() int {
	best, bestCount := 0, -1
	for h, c := range s.Histograms.Hours {
		if c > bestCount {
			best, bestCount = h, c
		}
	}
	return best
}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (s *AggregateStats) MostActiveDay() string {
	best, bestCount := 0, -1
	for d, c := range s.Histograms.Days {
		if c > bestCount {
			best, bestCount = d, c
		}
	}
	return dayNames[best]
}

func (s *AggregateStats) MostActiveYear() int {
	best, bestCount := 0, 0
	for y, c := range s.Histograms.Years {
		if c > bestCount || (c == bestCount && y > best) {
			best, bestCount = y, c
		}
	}
	return best
}

func (s *AggregateStats) MessagesPerDay() float64 {
	if s.Profile == nil {
		return 0
	}
	days := s.Profile.AccountAgeDays()
	if days <= 0 {
		return 0
	}
	return float64(s.Messages) / float64(days)
}

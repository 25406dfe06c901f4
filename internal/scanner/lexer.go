package scanner

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"dpscan/internal/models"
)

// timestampLayouts is the ordered fallback chain for message timestamps.
// First match wins; a message that defeats all of them still counts
// toward totals, just not toward the histograms.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.0",
}

func parseTimestamp(ts string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inviteDomains are the community-invite hosts recognized inside link
// tokens.
var inviteDomains = []string{
	"discord.gg",
	"discord.com/invite",
	"discordapp.com/invite",
}

func isInviteLink(lowered string) bool {
	for _, domain := range inviteDomains {
		if strings.Contains(lowered, domain) {
			return true
		}
	}
	return false
}

func isLink(lowered string) bool {
	return strings.HasPrefix(lowered, "http") ||
		strings.HasPrefix(lowered, "ftp") ||
		strings.HasPrefix(lowered, "file")
}

// analyzeMessage tokenizes one message and feeds its scope accumulator
// plus the aggregate's global accumulator. Each whitespace-delimited
// token lands in exactly one class: emoji/mention, link, profanity,
// ordinary word, or discarded.
func analyzeMessage(agg *models.Aggregate, scope *models.Accumulator, rec MessageRecord) {
	scope.Messages++
	agg.Global.Messages++

	chars := utf8.RuneCountInString(rec.Content)
	scope.Chars += chars
	agg.Global.Chars += chars

	if ts, ok := parseTimestamp(rec.Timestamp); ok {
		agg.Histograms.Observe(ts)
	}

	for _, token := range strings.Fields(rec.Content) {
		if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
			if strings.HasPrefix(token, "<@") {
				scope.Mentions++
				agg.Global.Mentions++
			} else {
				scope.Emotes++
				agg.Global.Emotes++
				scope.EmojiFreq.Inc(token)
				agg.Global.EmojiFreq.Inc(token)
			}
			continue
		}

		lowered := strings.ToLower(token)
		if isLink(lowered) {
			scope.LinkFreq.Inc(token)
			agg.Global.LinkFreq.Inc(token)
			if isInviteLink(lowered) {
				scope.InviteFreq.Inc(token)
				agg.Global.InviteFreq.Inc(token)
			}
			continue
		}

		word := strings.TrimFunc(lowered, unicode.IsPunct)
		length := utf8.RuneCountInString(word)
		if length <= 2 {
			continue
		}
		scope.Words++
		agg.Global.Words++
		if profanitySet[word] {
			scope.ProfanityFreq.Inc(word)
			agg.Global.ProfanityFreq.Inc(word)
			continue
		}
		// The extra length floor keeps the frequency table bounded and
		// drops low-signal short words.
		if length > 3 {
			scope.WordFreq.Inc(word)
			agg.Global.WordFreq.Inc(word)
		}
	}
}

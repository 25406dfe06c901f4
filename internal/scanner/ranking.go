package scanner

import (
	"regexp"
	"sort"
	"strings"

	"dpscan/internal/models"
)

const (
	topWordsN  = 50
	topLinksN  = 50
	topEmojisN = 30
	topScopesN = 20
	detailN    = 10
)

// stopWords are dropped from word rankings (word counts keep them).
var stopWords = makeSet([]string{
	"the", "and", "that", "have", "for", "with", "this", "what", "just",
	"from", "your", "http", "https", "you", "are", "but", "not", "can",
	"all", "was",
})

var emojiTokenRe = regexp.MustCompile(`^<(a)?:([^:]+):(\d+)>$`)

// keepWord filters ranked word lists: no stop words, nothing containing
// a digit.
func keepWord(label string) bool {
	if stopWords[label] {
		return false
	}
	return !strings.ContainsAny(label, "0123456789")
}

// summarize converts the merged aggregate into the immutable snapshot.
// Every list is sorted count-descending with a lexicographic tie-break,
// so identical input yields an identical snapshot.
func summarize(agg *models.Aggregate, serverIndex map[string]string, dmIndex map[string]string, emojiIndex EmojiIndex) *models.AggregateStats {
	stats := &models.AggregateStats{
		ServerCount: len(serverIndex),
		ServerNames: sortedServerNames(serverIndex),

		Messages:        agg.Global.Messages,
		Words:           agg.Global.Words,
		Chars:           agg.Global.Chars,
		Emotes:          agg.Global.Emotes,
		Mentions:        agg.Global.Mentions,
		FilesUploaded:   agg.Global.FilesUploaded,
		DMConversations: len(agg.DMs),

		Histograms: agg.Histograms,

		TopWords:     models.RankFiltered(agg.Global.WordFreq, topWordsN, keepWord),
		TopLinks:     models.Rank(agg.Global.LinkFreq, topLinksN),
		TopInvites:   models.Rank(agg.Global.InviteFreq, topLinksN),
		TopProfanity: models.Rank(agg.Global.ProfanityFreq, topWordsN),
		TopEmojis:    resolveEmojis(models.Rank(agg.Global.EmojiFreq, topEmojisN), emojiIndex),
	}

	for _, acc := range agg.Guilds {
		stats.ServerMessages += acc.Messages
	}
	for _, acc := range agg.DMs {
		stats.DMMessages += acc.Messages
	}

	guildName := func(id string) string {
		if name, ok := serverIndex[id]; ok {
			return name
		}
		return "Server " + id
	}
	dmName := func(id string) string {
		if name, ok := agg.DMNames[id]; ok && name != "" {
			return name
		}
		if name, ok := dmIndex[id]; ok && name != "" {
			return strings.TrimPrefix(name, dmNamePrefix)
		}
		return "Unknown DM"
	}

	topGuilds := rankScopes(agg.Guilds, topScopesN)
	topDMs := rankScopes(agg.DMs, topScopesN)

	for _, scope := range topGuilds {
		stats.TopServers = append(stats.TopServers, models.RankedEntry{Label: guildName(scope.id), Count: scope.count})
		stats.ServerDetails = append(stats.ServerDetails, detailScope(scope.id, guildName(scope.id), agg.Guilds[scope.id]))
	}
	for _, scope := range topDMs {
		stats.TopDMs = append(stats.TopDMs, models.RankedEntry{Label: dmName(scope.id), Count: scope.count})
		stats.DMDetails = append(stats.DMDetails, detailScope(scope.id, dmName(scope.id), agg.DMs[scope.id]))
	}

	return stats
}

type scopeRank struct {
	id    string
	count int
}

func rankScopes(scopes map[string]*models.Accumulator, n int) []scopeRank {
	ranked := make([]scopeRank, 0, len(scopes))
	for id, acc := range scopes {
		ranked = append(ranked, scopeRank{id: id, count: acc.Messages})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func detailScope(id, name string, acc *models.Accumulator) models.DetailedStats {
	return models.DetailedStats{
		ID:       id,
		Name:     name,
		Messages: acc.Messages,
		Words:    acc.Words,
		Chars:    acc.Chars,
		Emotes:   acc.Emotes,
		Mentions: acc.Mentions,

		TopWords:     models.RankFiltered(acc.WordFreq, detailN, keepWord),
		TopEmojis:    resolveEmojiNames(models.Rank(acc.EmojiFreq, detailN)),
		TopProfanity: models.Rank(acc.ProfanityFreq, detailN),
		TopLinks:     models.Rank(acc.LinkFreq, detailN),
		TopInvites:   models.Rank(acc.InviteFreq, detailN),
	}
}

// resolveEmojis turns ranked raw emoji tokens into display entries.
// Tokens that do not match the custom-emoji shape are dropped after
// ranking, not before, so the cut list stays at most topEmojisN long.
func resolveEmojis(ranked models.RankedList, index EmojiIndex) []models.EmojiEntry {
	entries := make([]models.EmojiEntry, 0, len(ranked))
	for _, entry := range ranked {
		match := emojiTokenRe.FindStringSubmatch(entry.Label)
		if match == nil {
			continue
		}
		animated := match[1] == "a"
		entries = append(entries, models.EmojiEntry{
			Name:     match[2],
			ID:       match[3],
			Count:    entry.Count,
			Animated: animated,
			ImageURL: index.URL(match[3], animated),
		})
	}
	return entries
}

// resolveEmojiNames relabels raw tokens with the emoji name for the
// compact per-scope lists.
func resolveEmojiNames(ranked models.RankedList) models.RankedList {
	out := make(models.RankedList, 0, len(ranked))
	for _, entry := range ranked {
		if match := emojiTokenRe.FindStringSubmatch(entry.Label); match != nil {
			entry.Label = match[2]
		}
		out = append(out, entry)
	}
	return out
}

package scanner

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// MessageRecord is one (content, timestamp) pair handed to the lexical
// analyzer. Records are ephemeral; they never reach the snapshot.
type MessageRecord struct {
	Content   string
	Timestamp string
}

// parseChannelMessages decodes a channel folder's message log. The
// tabular messages.csv wins over messages.json when both exist. Per-record
// failures are absorbed: a short row or broken file yields fewer (or zero)
// records, never an error. The attachments counter comes from the
// structured format only, independent of content/timestamp presence.
func parseChannelMessages(dir string) (records []MessageRecord, attachments int) {
	if data, err := os.ReadFile(filepath.Join(dir, "messages.csv")); err == nil {
		return parseTabular(string(data)), 0
	}
	if data, err := os.ReadFile(filepath.Join(dir, "messages.json")); err == nil {
		return parseStructured(data)
	}
	return nil, 0
}

// parseTabular reads the CSV-ish export format: ID,Timestamp,Contents,...
// The header line is skipped. Content is reassembled from every field past
// the timestamp so commas inside a message survive the naive split.
func parseTabular(data string) []MessageRecord {
	lines := strings.Split(data, "\n")
	var records []MessageRecord
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 || line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		records = append(records, MessageRecord{
			Content:   unquote(strings.Join(parts[2:], ",")),
			Timestamp: parts[1],
		})
	}
	return records
}

// unquote strips one surrounding double-quote pair left by the export's
// CSV writer around contents that contain commas.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func parseStructured(data []byte) (records []MessageRecord, attachments int) {
	var messages []messageSchema
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, 0
	}
	for _, msg := range messages {
		if msg.Contents != "" && msg.Timestamp != "" {
			records = append(records, MessageRecord{Content: msg.Contents, Timestamp: msg.Timestamp})
		}
		if msg.Attachments != "" {
			attachments++
		}
	}
	return records, attachments
}

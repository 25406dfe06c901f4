package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func mkDir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
}

const fixtureUserJson = `{
  "id": "175928847299117063",
  "username": "sampleuser",
  "discriminator": 42,
  "global_name": "Sample User",
  "email": "sampleuser@example.com",
  "phone": "+15550100",
  "avatar_hash": "a_deadbeef",
  "premium_type": 2,
  "flags": 64,
  "connections": [
    {"type": "steam", "name": "sampleSteam"},
    {"type": "contacts", "name": "Contacts"},
    {"type": "github", "name": "sample-gh"}
  ],
  "relationships": [{"type": 1}, {"type": 1}, {"type": 2}, {"type": 4}],
  "payments": [
    {"amount": 999, "currency": "usd", "status": 1, "created_at": "2023-01-10T00:00:00Z"},
    {"amount": 4999, "currency": "eur", "status": 1, "created_at": "2023-06-01T00:00:00Z"},
    {"amount": 100, "currency": "usd", "status": 0, "created_at": "2023-02-01T00:00:00Z"}
  ]
}`

// buildExport lays out a small but complete data package:
//
//	Servers/42 "Gaming Hub": channel c100 (tabular log, no metadata)
//	Servers/77 "Book Club":  channel c200 (structured log + metadata)
//	messages/d1: DM with alice (tabular log)
//	messages/d2: empty channel folder, must leave no trace
//
// Expected totals are asserted in the end-to-end scan test.
func buildExport(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "Servers", "index.json"),
		`{"42": "Gaming Hub", "77": "Book Club"}`)
	writeFile(t, filepath.Join(root, "Servers", "42", "emoji", "111.png"), "png")
	writeFile(t, filepath.Join(root, "Servers", "42", "emoji", "222.gif"), "gif")
	writeFile(t, filepath.Join(root, "Servers", "42", "emoji", "readme.txt"), "not an emoji")

	writeFile(t, filepath.Join(root, "Servers", "42", "c100", "messages.csv"),
		"ID,Timestamp,Contents,Attachments\n"+
			"1,2024-01-15T12:30:45.123Z,\"hello, world\"\n"+
			"2,2024-01-15T13:00:00Z,check <a:wow:111> out http://discord.gg/abc\n")

	writeFile(t, filepath.Join(root, "Servers", "77", "c200", "channel.json"),
		`{"id": "c200", "guild_id": 77}`)
	writeFile(t, filepath.Join(root, "Servers", "77", "c200", "messages.json"),
		`[
  {"ID": 3, "Timestamp": "2024-03-02 09:15:00", "Contents": "damn that bug", "Attachments": ""},
  {"ID": 4, "Timestamp": "bogus", "Contents": "reading books", "Attachments": "screen.png"}
]`)

	writeFile(t, filepath.Join(root, "messages", "index.json"),
		`{"d1": "Direct Message with alice", "d2": "Direct Message with bob"}`)
	writeFile(t, filepath.Join(root, "messages", "d1", "messages.csv"),
		"ID,Timestamp,Contents,Attachments\n"+
			"5,2024-01-15T18:00:00Z,hey <@999> see you\n")
	mkDir(t, filepath.Join(root, "messages", "d2"))

	writeFile(t, filepath.Join(root, "Account", "user.json"), fixtureUserJson)
	writeFile(t, filepath.Join(root, "Account", "recent_avatars", "2021-03-01.png"), "old")
	writeFile(t, filepath.Join(root, "Account", "recent_avatars", "2023-07-15.png"), "new")
	writeFile(t, filepath.Join(root, "Account", "recent_avatars", "notes.txt"), "skip")

	writeFile(t, filepath.Join(root, "Account", "applications", "555", "application.json"),
		`{"id": 555, "name": "TestBot", "description": "A helper bot", "bot_token": "secret-token"}`)

	writeFile(t, filepath.Join(root, "Activity", "analytics.json"),
		`{"event_type": "app_opened"}
{"event_type": "app_opened"}
{"event_type": "join_voice_channel"}
{"event_type": "add_reaction"}
`)

	writeFile(t, filepath.Join(root, "Account", "tickets.json"),
		`[
  {"id": 1, "status": "closed", "subject": "Old issue", "created_at": "2022-01-01T00:00:00Z", "messages": [{"content": "a"}, {"content": "b"}]},
  {"id": 2, "status": "open", "subject": "New issue", "created_at": "2024-05-01T00:00:00Z", "messages": [{"content": "c"}]}
]`)

	return root
}

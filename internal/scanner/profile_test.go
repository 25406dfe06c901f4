package scanner

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile_FullAccount(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Account", "user.json"), fixtureUserJson)

	profile := ParseProfile(root)
	require.NotNil(t, profile)

	assert.Equal(t, "175928847299117063", profile.ID)
	assert.Equal(t, "sampleuser", profile.Username)
	assert.Equal(t, "42", profile.Discriminator)
	assert.Equal(t, "Sample User", profile.GlobalName)
	assert.Equal(t, 2, profile.PremiumType)

	assert.Equal(t, 2, profile.FriendCount)
	assert.Equal(t, 1, profile.BlockedCount)

	require.Len(t, profile.Connections, 2, "contacts connection is dropped")
	assert.Equal(t, "steam", profile.Connections[0].Type)
	assert.Equal(t, "github", profile.Connections[1].Type)
}

func TestParseProfile_ConfirmedPaymentsOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Account", "user.json"), fixtureUserJson)

	profile := ParseProfile(root)
	require.NotNil(t, profile)

	assert.Equal(t, 2, profile.PaymentCount)
	assert.InDelta(t, 9.99, profile.TotalSpent["usd"], 0.001)
	assert.InDelta(t, 49.99, profile.TotalSpent["eur"], 0.001)
}

func TestParseProfile_SnowflakeCreationTime(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Account", "user.json"), fixtureUserJson)

	profile := ParseProfile(root)
	require.NotNil(t, profile)

	created := profile.CreatedAt()
	assert.Equal(t, time.Date(2016, 4, 30, 11, 18, 25, 0, time.UTC), created.Truncate(time.Second))
}

func TestParseProfile_RecentAvatarsNewestFirst(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Account", "user.json"), `{"username": "u"}`)
	writeFile(t, filepath.Join(root, "Account", "recent_avatars", "2021-03-01.png"), "old")
	writeFile(t, filepath.Join(root, "Account", "recent_avatars", "2023-07-15.png"), "new")
	writeFile(t, filepath.Join(root, "Account", "recent_avatars", "notes.txt"), "skip")

	profile := ParseProfile(root)
	require.NotNil(t, profile)
	require.Len(t, profile.RecentAvatars, 2)
	assert.Contains(t, profile.RecentAvatars[0], "2023-07-15.png")
	assert.Contains(t, profile.RecentAvatars[1], "2021-03-01.png")
}

func TestParseProfile_LocalizedFolder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Compte", "user.json"), `{"id": "1", "username": "french user"}`)

	profile := ParseProfile(root)
	require.NotNil(t, profile)
	assert.Equal(t, "french user", profile.Username)
}

func TestParseProfile_DefaultUsername(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Account", "user.json"), `{"id": "1"}`)

	profile := ParseProfile(root)
	require.NotNil(t, profile)
	assert.Equal(t, "Discord User", profile.Username)
}

func TestParseProfile_Missing(t *testing.T) {
	assert.Nil(t, ParseProfile(t.TempDir()))
}

func TestParseProfile_BrokenJson(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Account", "user.json"), "{broken")

	assert.Nil(t, ParseProfile(root))
}

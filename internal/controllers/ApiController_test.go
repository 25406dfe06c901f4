package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpscan/internal/models"
	"dpscan/internal/services"
	"dpscan/internal/testutil"
)

func sampleSnapshot() *models.AggregateStats {
	return &models.AggregateStats{
		GeneratedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Root:            "/data/package",
		Messages:        100,
		Words:           250,
		ServerMessages:  80,
		DMMessages:      20,
		DMConversations: 3,
		ServerCount:     2,
		ServerNames:     []string{"Book Club", "Gaming Hub"},
		TopWords:        models.RankedList{{Label: "gaming", Count: 12}},
		TopServers:      models.RankedList{{Label: "Gaming Hub", Count: 60}},
		TopEmojis:       []models.EmojiEntry{{Name: "wow", ID: "111", Count: 4}},
		Bots:            []models.BotApp{{ID: "555", Name: "TestBot"}},
	}
}

func newController(service *testutil.MockSnapshotService) (*ApiController, *testutil.MockCache) {
	cache := testutil.NewMockCache()
	return NewApiController(&testutil.MockLogger{}, service, cache), cache
}

func doGet(t *testing.T, handler func(http.ResponseWriter, *http.Request), url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestGetStats_NoSnapshot(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{})

	rec := doGet(t, controller.GetStats, "/stats")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No Data Found")
}

func TestGetStats_ReturnsTotals(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{SnapshotData: sampleSnapshot()})

	rec := doGet(t, controller.GetStats, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 100, body["messages"])
	assert.EqualValues(t, 80, body["server_messages"])
	assert.EqualValues(t, 20, body["dm_messages"])
	assert.EqualValues(t, 2, body["server_count"])
}

func TestGetStats_CachesPerSnapshot(t *testing.T) {
	service := &testutil.MockSnapshotService{SnapshotData: sampleSnapshot()}
	controller, cache := newController(service)

	doGet(t, controller.GetStats, "/stats")
	assert.Len(t, cache.Data, 1)

	// The same snapshot hits the same key.
	doGet(t, controller.GetStats, "/stats")
	assert.Len(t, cache.Data, 1)

	// A new snapshot generates a new key, leaving the old entry to expire.
	next := sampleSnapshot()
	next.GeneratedAt = next.GeneratedAt.Add(time.Hour)
	service.SnapshotData = next
	doGet(t, controller.GetStats, "/stats")
	assert.Len(t, cache.Data, 2)
}

func TestGetStats_ServesFromCache(t *testing.T) {
	service := &testutil.MockSnapshotService{SnapshotData: sampleSnapshot()}
	controller, cache := newController(service)

	first := doGet(t, controller.GetStats, "/stats")
	require.Equal(t, http.StatusOK, first.Code)

	for key := range cache.Data {
		cache.Data[key] = []byte(`{"cached": true}`)
	}

	second := doGet(t, controller.GetStats, "/stats")
	assert.JSONEq(t, `{"cached": true}`, second.Body.String())
}

func TestGetProfile_NoProfileInSnapshot(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{SnapshotData: sampleSnapshot()})

	rec := doGet(t, controller.GetProfile, "/profile")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfile_ReturnsDerivedFields(t *testing.T) {
	snap := sampleSnapshot()
	snap.Profile = &models.AccountProfile{
		ID:          "175928847299117063",
		Username:    "sampleuser",
		PremiumType: 2,
		AvatarHash:  "abcdef",
		TotalSpent:  map[string]float64{"usd": 9.99},
	}
	controller, _ := newController(&testutil.MockSnapshotService{SnapshotData: snap})

	rec := doGet(t, controller.GetProfile, "/profile")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Nitro", body["nitro"])
	assert.Equal(t, "USD 9.99", body["total_spent"])
	assert.Contains(t, body["avatar_url"], "cdn.discordapp.com/avatars")
}

func TestGetServers(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{SnapshotData: sampleSnapshot()})

	rec := doGet(t, controller.GetServers, "/servers")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body["count"])
	assert.Len(t, body["names"], 2)
}

func TestGetEmojis(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{SnapshotData: sampleSnapshot()})

	rec := doGet(t, controller.GetEmojis, "/emojis")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.EmojiEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "wow", body[0].Name)
}

func TestGetBots(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{SnapshotData: sampleSnapshot()})

	rec := doGet(t, controller.GetBots, "/bots")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.BotApp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "TestBot", body[0].Name)
}

func TestTriggerScan_Accepted(t *testing.T) {
	service := &testutil.MockSnapshotService{}
	controller, _ := newController(service)

	rec := httptest.NewRecorder()
	controller.TriggerScan(rec, httptest.NewRequest(http.MethodPost, "/scan", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, service.TriggerCalls)
}

func TestTriggerScan_Conflict(t *testing.T) {
	service := &testutil.MockSnapshotService{TriggerErr: services.ErrScanRunning}
	controller, _ := newController(service)

	rec := httptest.NewRecorder()
	controller.TriggerScan(rec, httptest.NewRequest(http.MethodPost, "/scan", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTriggerScan_InternalError(t *testing.T) {
	service := &testutil.MockSnapshotService{TriggerErr: errors.New("boom")}
	controller, _ := newController(service)

	rec := httptest.NewRecorder()
	controller.TriggerScan(rec, httptest.NewRequest(http.MethodPost, "/scan", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAllReadEndpoints_NoSnapshot(t *testing.T) {
	controller, _ := newController(&testutil.MockSnapshotService{})

	handlers := map[string]func(http.ResponseWriter, *http.Request){
		"/stats":    controller.GetStats,
		"/profile":  controller.GetProfile,
		"/servers":  controller.GetServers,
		"/dms":      controller.GetDMs,
		"/words":    controller.GetWords,
		"/emojis":   controller.GetEmojis,
		"/links":    controller.GetLinks,
		"/activity": controller.GetActivity,
		"/tickets":  controller.GetTickets,
		"/bots":     controller.GetBots,
	}
	for url, handler := range handlers {
		rec := doGet(t, handler, url)
		assert.Equal(t, http.StatusNotFound, rec.Code, url)
	}
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"dpscan/internal/models"
	"dpscan/internal/providers"
	"dpscan/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.SnapshotServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.SnapshotServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

// snapshotKey scopes a cache key to one published snapshot, so an
// on-demand rescan invalidates responses without any explicit flush.
func snapshotKey(prefix string, snap *models.AggregateStats) string {
	return fmt.Sprintf("%s:%d", prefix, snap.GeneratedAt.UnixNano())
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// snapshot fetches the published snapshot or answers 404, the only
// "no data found" surface the service exposes.
func (ac *ApiController) snapshot(w http.ResponseWriter) *models.AggregateStats {
	snap := ac.service.Snapshot()
	if snap == nil {
		http.Error(w, "No Data Found", http.StatusNotFound)
	}
	return snap
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("stats", snap), func() (any, error) {
		return map[string]any{
			"generated_at":     snap.GeneratedAt,
			"root":             snap.Root,
			"messages":         snap.Messages,
			"words":            snap.Words,
			"chars":            snap.Chars,
			"emotes":           snap.Emotes,
			"mentions":         snap.Mentions,
			"files_uploaded":   snap.FilesUploaded,
			"server_messages":  snap.ServerMessages,
			"dm_messages":      snap.DMMessages,
			"dm_conversations": snap.DMConversations,
			"server_count":     snap.ServerCount,
			"most_active_hour": snap.MostActiveHour(),
			"most_active_day":  snap.MostActiveDay(),
			"most_active_year": snap.MostActiveYear(),
			"messages_per_day": snap.MessagesPerDay(),
		}, nil
	})
}

func (ac *ApiController) GetProfile(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	if snap.Profile == nil {
		http.Error(w, "No Data Found", http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("profile", snap), func() (any, error) {
		return map[string]any{
			"profile":          snap.Profile,
			"created_at":       snap.Profile.CreatedAt(),
			"account_age_days": snap.Profile.AccountAgeDays(),
			"nitro":            snap.Profile.NitroTier(),
			"avatar_url":       snap.Profile.AvatarURL(),
			"total_spent":      snap.Profile.FormattedTotalSpent(),
		}, nil
	})
}

func (ac *ApiController) GetServers(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("servers", snap), func() (any, error) {
		return map[string]any{
			"count":       snap.ServerCount,
			"names":       snap.ServerNames,
			"messages":    snap.ServerMessages,
			"top_servers": snap.TopServers,
			"details":     snap.ServerDetails,
		}, nil
	})
}

func (ac *ApiController) GetDMs(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("dms", snap), func() (any, error) {
		return map[string]any{
			"conversations": snap.DMConversations,
			"messages":      snap.DMMessages,
			"top_dms":       snap.TopDMs,
			"details":       snap.DMDetails,
		}, nil
	})
}

func (ac *ApiController) GetWords(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("words", snap), func() (any, error) {
		return map[string]any{
			"top_words":     snap.TopWords,
			"top_profanity": snap.TopProfanity,
		}, nil
	})
}

func (ac *ApiController) GetEmojis(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("emojis", snap), func() (any, error) {
		return snap.TopEmojis, nil
	})
}

func (ac *ApiController) GetLinks(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("links", snap), func() (any, error) {
		return map[string]any{
			"top_links":   snap.TopLinks,
			"top_invites": snap.TopInvites,
		}, nil
	})
}

func (ac *ApiController) GetActivity(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("activity", snap), func() (any, error) {
		return map[string]any{
			"histograms": snap.Histograms,
			"analytics":  snap.Analytics,
		}, nil
	})
}

func (ac *ApiController) GetTickets(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("tickets", snap), func() (any, error) {
		return snap.Tickets, nil
	})
}

func (ac *ApiController) GetBots(w http.ResponseWriter, r *http.Request) {
	snap := ac.snapshot(w)
	if snap == nil {
		return
	}
	ac.serveFromCacheOrCompute(w, snapshotKey("bots", snap), func() (any, error) {
		return snap.Bots, nil
	})
}

// TriggerScan kicks off a background rescan of the configured package.
func (ac *ApiController) TriggerScan(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.TriggerScan(); err != nil {
		if errors.Is(err, services.ErrScanRunning) {
			http.Error(w, "Scan Already Running", http.StatusConflict)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.logger.Infof(providers.TypeHttp, "Rescan triggered")
	w.WriteHeader(http.StatusAccepted)
}

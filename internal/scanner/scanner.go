package scanner

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"dpscan/internal/models"
	"dpscan/internal/providers"
	"dpscan/internal/structures"
)

// Metrics is the slice of the metrics provider the scanner feeds.
type Metrics interface {
	IncChannelsScanned()
	AddMessagesParsed(n int)
	ObserveScanDuration(duration time.Duration)
}

// Scanner turns one data package directory into one immutable
// AggregateStats snapshot. It holds no state between scans beyond the
// lifecycle flag; the emoji index and name indexes are rebuilt per scan
// and threaded through the pipeline read-only.
type Scanner struct {
	conf    *structures.Config
	logger  providers.Logger
	metrics Metrics
	state   atomic.Int32
}

func NewScanner(conf *structures.Config, logger providers.Logger, metrics Metrics) *Scanner {
	return &Scanner{
		conf:    conf,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Scanner) State() ScanState {
	return ScanState(s.state.Load())
}

func (s *Scanner) setState(state ScanState) {
	s.state.Store(int32(state))
}

func (s *Scanner) batchSize() int {
	if s.conf != nil && s.conf.Scan.BatchSize > 0 {
		return s.conf.Scan.BatchSize
	}
	return defaultBatchSize
}

func (s *Scanner) workers() int {
	if s.conf != nil && s.conf.Scan.Workers > 0 {
		return s.conf.Scan.Workers
	}
	return defaultWorkers
}

// Scan runs the full pipeline: locate root, parse profile and indexes,
// aggregate every channel concurrently, rank and summarize. The returned
// snapshot is complete and immutable. The only error path is the
// setup-fatal one (path is not a readable directory); everything else
// degrades to an emptier snapshot.
func (s *Scanner) Scan(ctx context.Context, path string, progress ProgressFunc) (*models.AggregateStats, error) {
	start := time.Now()
	report := newReporter(progress)
	s.setState(StateScanning)

	root, err := ResolveRoot(path)
	if err != nil {
		s.setState(StateFailed)
		s.logger.Errorf(providers.TypeScan, "Scan setup failed: %s", err)
		return nil, err
	}
	s.logger.Infof(providers.TypeScan, "Starting scan of %s", root)
	report.stepf(0.05, "Loading profile...")

	profile := ParseProfile(root)
	if profile != nil {
		s.logger.Infof(providers.TypeScan, "Profile: %s, %d friends, %d connections",
			profile.Username, profile.FriendCount, len(profile.Connections))
	}

	report.stepf(0.10, "Indexing servers and emojis...")
	emojiIndex := IndexEmojiAssets(root)
	serverIndex := loadServerIndex(root)
	dmIndex := loadDMIndex(root)
	s.logger.Infof(providers.TypeScan, "Indexed %d local emojis, %d servers", len(emojiIndex), len(serverIndex))

	report.stepf(0.15, "Processing messages...")
	agg := s.aggregate(ctx, root, dmIndex, report)

	s.setState(StateMerging)
	report.stepf(0.90, "Summarizing...")
	stats := summarize(agg, serverIndex, dmIndex, emojiIndex)
	stats.Profile = profile
	stats.Root = root
	stats.Analytics = parseAnalytics(root)
	stats.Tickets = parseTickets(root)
	stats.Bots = parseBots(root)
	stats.GeneratedAt = time.Now().UTC()
	stats.Elapsed = time.Since(start)

	s.setState(StateComplete)
	if s.metrics != nil {
		s.metrics.ObserveScanDuration(stats.Elapsed)
	}
	report.stepf(1.0, "Complete: %d messages", stats.Messages)
	s.logger.Infof(providers.TypeScan, "Scan done: %d messages across %d servers and %d DMs (%.2fs)",
		stats.Messages, len(agg.Guilds), len(agg.DMs), stats.Elapsed.Seconds())

	return stats, nil
}

package services

import (
	"context"
	"errors"

	"go.uber.org/atomic"

	"dpscan/internal/models"
	"dpscan/internal/providers"
	"dpscan/internal/scanner"
	"dpscan/internal/structures"
)

var ErrScanRunning = errors.New("a scan is already running")

type SnapshotServiceInterface interface {
	Scan(ctx context.Context) (*models.AggregateStats, error)
	TriggerScan() error
	Snapshot() *models.AggregateStats
	Scanning() bool
	ScanState() scanner.ScanState
}

// SnapshotService runs scans and publishes their snapshots. Only one
// scan runs at a time; a scan runs to completion, it is not cancellable
// midway.
type SnapshotService struct {
	conf     *structures.Config
	logger   providers.Logger
	scanner  *scanner.Scanner
	store    *SnapshotStore
	scanning atomic.Bool
}

func NewSnapshotService(conf *structures.Config, logger providers.Logger, sc *scanner.Scanner, store *SnapshotStore) SnapshotServiceInterface {
	return &SnapshotService{
		conf:    conf,
		logger:  logger,
		scanner: sc,
		store:   store,
	}
}

// Scan runs a full scan of the configured package path and publishes the
// snapshot. Blocking; returns ErrScanRunning when called concurrently.
func (ss *SnapshotService) Scan(ctx context.Context) (*models.AggregateStats, error) {
	if !ss.scanning.CompareAndSwap(false, true) {
		return nil, ErrScanRunning
	}
	defer ss.scanning.Store(false)

	stats, err := ss.scanner.Scan(ctx, ss.conf.Scan.PackagePath, ss.progress)
	if err != nil {
		return nil, err
	}
	ss.store.Publish(stats)
	return stats, nil
}

// TriggerScan starts a scan in the background, rejecting overlap.
func (ss *SnapshotService) TriggerScan() error {
	if ss.scanning.Load() {
		return ErrScanRunning
	}
	go func() {
		if _, err := ss.Scan(context.Background()); err != nil && !errors.Is(err, ErrScanRunning) {
			ss.logger.Errorf(providers.TypeScan, "Background scan failed: %s", err)
		}
	}()
	return nil
}

// progress forwards the scan's status stream into the scan log.
func (ss *SnapshotService) progress(event scanner.ProgressEvent) {
	ss.logger.Debugf(providers.TypeScan, "%s", event)
}

func (ss *SnapshotService) Snapshot() *models.AggregateStats {
	return ss.store.Current()
}

func (ss *SnapshotService) Scanning() bool {
	return ss.scanning.Load()
}

func (ss *SnapshotService) ScanState() scanner.ScanState {
	return ss.scanner.State()
}

package services

import (
	"go.uber.org/atomic"

	"dpscan/internal/models"
)

// SnapshotStore holds the currently published snapshot. Publication is a
// single pointer swap, so readers either see the previous complete
// snapshot or the new complete one, never a partial state.
type SnapshotStore struct {
	current atomic.Pointer[models.AggregateStats]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Publish(stats *models.AggregateStats) {
	s.current.Store(stats)
}

// Current returns the published snapshot, nil before the first scan
// completes.
func (s *SnapshotStore) Current() *models.AggregateStats {
	return s.current.Load()
}

// The methods below feed the metrics gauges.

func (s *SnapshotStore) MessageCount() int {
	if snap := s.Current(); snap != nil {
		return snap.Messages
	}
	return 0
}

func (s *SnapshotStore) ServerScopeCount() int {
	if snap := s.Current(); snap != nil {
		return len(snap.ServerDetails)
	}
	return 0
}

func (s *SnapshotStore) DMScopeCount() int {
	if snap := s.Current(); snap != nil {
		return snap.DMConversations
	}
	return 0
}

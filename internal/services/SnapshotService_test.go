package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpscan/internal/scanner"
	"dpscan/internal/structures"
	"dpscan/internal/testutil"
)

func writeExportFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// smallExport holds two DM messages in one channel.
func smallExport(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeExportFile(t, filepath.Join(root, "messages", "index.json"),
		`{"d1": "Direct Message with alice"}`)
	writeExportFile(t, filepath.Join(root, "messages", "d1", "messages.csv"),
		"ID,Timestamp,Contents\n"+
			"1,2024-01-15T12:00:00Z,hello there\n"+
			"2,2024-01-15T13:00:00Z,general kenobi\n")
	return root
}

func newService(t *testing.T, packagePath string) (SnapshotServiceInterface, *SnapshotStore) {
	t.Helper()
	conf := &structures.Config{
		Scan: structures.ScanConfig{PackagePath: packagePath, BatchSize: 4, Workers: 2},
	}
	logger := &testutil.MockLogger{}
	store := NewSnapshotStore()
	sc := scanner.NewScanner(conf, logger, nil)
	return NewSnapshotService(conf, logger, sc, store), store
}

func TestSnapshotService_ScanPublishes(t *testing.T) {
	service, store := newService(t, smallExport(t))

	stats, err := service.Scan(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.Messages)

	assert.Same(t, stats, store.Current())
	assert.Same(t, stats, service.Snapshot())
	assert.Equal(t, scanner.StateComplete, service.ScanState())
	assert.False(t, service.Scanning())
}

func TestSnapshotService_ScanErrorKeepsOldSnapshot(t *testing.T) {
	root := smallExport(t)
	conf := &structures.Config{
		Scan: structures.ScanConfig{PackagePath: root},
	}
	logger := &testutil.MockLogger{}
	store := NewSnapshotStore()
	sc := scanner.NewScanner(conf, logger, nil)
	service := NewSnapshotService(conf, logger, sc, store)

	first, err := service.Scan(context.Background())
	require.NoError(t, err)

	conf.Scan.PackagePath = filepath.Join(t.TempDir(), "gone")
	_, err = service.Scan(context.Background())
	require.Error(t, err)
	assert.Same(t, first, store.Current(), "failed scan never unpublishes")
	assert.Equal(t, scanner.StateFailed, service.ScanState())
}

func TestSnapshotService_SnapshotNilBeforeFirstScan(t *testing.T) {
	service, _ := newService(t, smallExport(t))
	assert.Nil(t, service.Snapshot())
}

func TestSnapshotService_TriggerScanRunsInBackground(t *testing.T) {
	service, store := newService(t, smallExport(t))

	require.NoError(t, service.TriggerScan())

	deadline := time.Now().Add(5 * time.Second)
	for store.Current() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.NotNil(t, store.Current())
	assert.Equal(t, 2, store.Current().Messages)
}

func TestSnapshotService_ConcurrentScanRejected(t *testing.T) {
	service, _ := newService(t, smallExport(t))

	ss := service.(*SnapshotService)
	ss.scanning.Store(true)

	_, err := service.Scan(context.Background())
	assert.ErrorIs(t, err, ErrScanRunning)
	assert.Error(t, service.TriggerScan())
	assert.True(t, service.Scanning())
}

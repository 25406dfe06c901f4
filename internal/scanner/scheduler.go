package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"dpscan/internal/models"
)

// ScanState is the scheduler lifecycle. Failed is reachable only from a
// setup-fatal condition; per-file failures are absorbed long before the
// scheduler can see them.
type ScanState int32

const (
	StateIdle ScanState = iota
	StateScanning
	StateMerging
	StateComplete
	StateFailed
)

func (s ScanState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateMerging:
		return "merging"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

const (
	defaultBatchSize = 16
	defaultWorkers   = 4
)

// collectChannelFolders flattens every guild channel folder and every
// flat DM channel folder into one work list. The per-guild emoji asset
// folder is not a channel and is skipped.
func collectChannelFolders(root string) []channelFolder {
	var folders []channelFolder

	serversRoot := filepath.Join(root, "Servers")
	if guilds, err := os.ReadDir(serversRoot); err == nil {
		for _, guild := range guilds {
			if !guild.IsDir() {
				continue
			}
			guildDir := filepath.Join(serversRoot, guild.Name())
			channels, err := os.ReadDir(guildDir)
			if err != nil {
				continue
			}
			for _, ch := range channels {
				if !ch.IsDir() || ch.Name() == "emoji" {
					continue
				}
				folders = append(folders, channelFolder{
					path:        filepath.Join(guildDir, ch.Name()),
					parentGuild: guild.Name(),
				})
			}
		}
	}

	for _, name := range []string{"messages", "Messages"} {
		dmRoot := filepath.Join(root, name)
		channels, err := os.ReadDir(dmRoot)
		if err != nil {
			continue
		}
		for _, ch := range channels {
			if !ch.IsDir() {
				continue
			}
			folders = append(folders, channelFolder{path: filepath.Join(dmRoot, ch.Name())})
		}
		break
	}

	return folders
}

func batchFolders(folders []channelFolder, size int) [][]channelFolder {
	if size <= 0 {
		size = defaultBatchSize
	}
	var batches [][]channelFolder
	for len(folders) > size {
		batches = append(batches, folders[:size])
		folders = folders[size:]
	}
	if len(folders) > 0 {
		batches = append(batches, folders)
	}
	return batches
}

// aggregate runs the concurrent phase: batches of channel folders are
// processed by a bounded worker pool, each worker accumulating into
// private state and merging under one mutex once its batch is done. The
// returned aggregate is complete; the errgroup wait is the barrier that
// keeps partial state invisible.
func (s *Scanner) aggregate(ctx context.Context, root string, dmIndex map[string]string, report reporter) *models.Aggregate {
	folders := collectChannelFolders(root)
	batches := batchFolders(folders, s.batchSize())

	shared := models.NewAggregate()
	var mu sync.Mutex
	var done int

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			local := models.NewAggregate()
			for _, folder := range batch {
				s.processChannel(local, folder, dmIndex)
			}

			mu.Lock()
			shared.Merge(local)
			done++
			finished := done
			mu.Unlock()

			report.stepf(0.15+0.75*float64(finished)/float64(max(len(batches), 1)),
				"Processed %d/%d channel batches", finished, len(batches))
			return nil
		})
	}
	_ = g.Wait()

	return shared
}

// processChannel classifies one folder, parses its message log and runs
// every record through the lexical analyzer into the folder's scope.
// Channels with no records and no attachments leave no trace, so empty
// folders never inflate the conversation counts.
func (s *Scanner) processChannel(local *models.Aggregate, folder channelFolder, dmIndex map[string]string) {
	records, attachments := parseChannelMessages(folder.path)
	if len(records) == 0 && attachments == 0 {
		return
	}

	desc := classifyChannel(folder, dmIndex)

	var scope *models.Accumulator
	if desc.GuildID != "" {
		scope = local.Guild(desc.GuildID)
	} else {
		scope = local.DM(desc.ID)
		local.DMNames[desc.ID] = desc.DMName
	}

	scope.FilesUploaded += attachments
	local.Global.FilesUploaded += attachments

	for _, rec := range records {
		analyzeMessage(local, scope, rec)
	}

	if s.metrics != nil {
		s.metrics.IncChannelsScanned()
		s.metrics.AddMessagesParsed(len(records))
	}
}

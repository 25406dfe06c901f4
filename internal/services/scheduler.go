package services

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"dpscan/internal/providers"
	"dpscan/internal/report"
	"dpscan/internal/structures"
)

type SchedulerInterface interface {
	InitialScan() error
	Init()
	Stop()
}

// Scheduler owns the scan lifecycle around the service: the blocking
// startup scan, optional periodic full rescans, and report dumps after
// each completed scan.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service SnapshotServiceInterface
	writer  *report.Writer
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, service SnapshotServiceInterface, writer *report.Writer) SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		writer:  writer,
	}
}

// InitialScan runs the startup scan synchronously so the API never comes
// up without having tried to build a snapshot.
func (s *Scheduler) InitialScan() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	stats, err := s.service.Scan(context.Background())
	if err != nil {
		return err
	}
	s.saveReport()
	s.logger.Infof(providers.TypeApp, "Initial scan published: %d messages", stats.Messages)
	return nil
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	if interval := s.config.Scan.Rescan; interval > 0 {
		s.cron.AddFunc(gron.Every(interval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()

			s.logger.Infof(providers.TypeApp, "Periodic rescan...")
			if _, err := s.service.Scan(context.Background()); err != nil {
				s.logger.Errorf(providers.TypeApp, "Periodic rescan failed: %s", err)
				return
			}
			s.saveReport()
			s.logger.Infof(providers.TypeApp, "Periodic rescan published")
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) saveReport() {
	if !s.config.Report.Enabled {
		return
	}
	snap := s.service.Snapshot()
	if snap == nil {
		return
	}
	if err := s.writer.Save(s.config.Report.FilePath, snap); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while writing report: %s", err)
		return
	}
	s.logger.Infof(providers.TypeApp, "Report written to %s", s.config.Report.FilePath)
}

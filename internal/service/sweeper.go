package service

import (
	"context"
	"fmt"
	"time"

	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/storage"

	"github.com/robfig/cron/v3"
)

// OrphanSweeper deletes uploads that were never attached to an accommodation
// once they are older than the grace period
type OrphanSweeper struct {
	images    repository.ImageRepositoryInterface
	relocator *storage.Relocator
	grace     time.Duration
	now       func() time.Time
	cron      *cron.Cron
}

// NewOrphanSweeper creates a new orphan sweeper
func NewOrphanSweeper(images repository.ImageRepositoryInterface, relocator *storage.Relocator, grace time.Duration) *OrphanSweeper {
	return &OrphanSweeper{
		images:    images,
		relocator: relocator,
		grace:     grace,
		now:       time.Now,
	}
}

// Sweep removes every unreferenced image older than the grace period and
// returns how many rows were deleted. Files are removed after their row.
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	log := logger.ForComponent(ctx, "sweeper")

	candidates, err := s.images.ListUnreferencedBefore(s.now().Add(-s.grace))
	if err != nil {
		return 0, fmt.Errorf("list unreferenced images: %w", err)
	}

	deleted := 0
	for _, img := range candidates {
		ok, err := s.images.DeleteIfUnreferenced(img.ID)
		if err != nil {
			log.WithError(err).Errorf("failed to delete image %s", img.ID)
			continue
		}
		if !ok {
			// attached since it was listed
			continue
		}
		deleted++
		if err := s.relocator.RemoveFile(img.Path); err != nil {
			log.WithError(err).Warnf("failed to remove file %s", img.Path)
		}
	}

	if deleted > 0 {
		log.Infof("swept %d unattached image(s)", deleted)
	}
	return deleted, nil
}

// Start schedules Sweep with a cron spec such as "@every 1h". An empty spec
// disables the sweeper.
func (s *OrphanSweeper) Start(spec string) error {
	if spec == "" {
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			logger.ForComponent(context.Background(), "sweeper").WithError(err).Error("orphan sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule orphan sweep: %w", err)
	}
	s.cron = c
	c.Start()
	logger.ForComponent(context.Background(), "sweeper").Infof("orphan sweep scheduled: %s", spec)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *OrphanSweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

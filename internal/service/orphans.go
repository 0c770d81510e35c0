package service

import (
	"context"
	"errors"
	"fmt"

	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrphanCollector deletes image rows that no link row references any more.
// Reference counts are always taken across every accommodation.
type OrphanCollector struct{}

// NewOrphanCollector creates a new orphan collector
func NewOrphanCollector() *OrphanCollector {
	return &OrphanCollector{}
}

// ReferenceSnapshot holds, per image, how many link rows from other
// accommodations referenced it before a delete removed the owner's links.
type ReferenceSnapshot map[uuid.UUID]int64

// Snapshot counts references to each image from accommodations other than
// accommodationID. Call it before the links are removed.
func (c *OrphanCollector) Snapshot(tx repository.StoreInterface, accommodationID uuid.UUID, imageIDs []uuid.UUID) (ReferenceSnapshot, error) {
	snap := make(ReferenceSnapshot, len(imageIDs))
	for _, id := range imageIDs {
		n, err := tx.Links().CountImageReferencesExcluding(id, accommodationID)
		if err != nil {
			return nil, fmt.Errorf("count references to image %s: %w", id, err)
		}
		snap[id] = n
	}
	return snap, nil
}

// Collect deletes each candidate image whose global reference count is zero
// and returns the deleted rows so the caller can remove their files.
func (c *OrphanCollector) Collect(ctx context.Context, tx repository.StoreInterface, candidates []uuid.UUID) ([]models.Image, error) {
	var removed []models.Image
	for _, id := range uniqueIDs(candidates) {
		n, err := tx.Links().CountImageReferences(id)
		if err != nil {
			return removed, fmt.Errorf("count references to image %s: %w", id, err)
		}
		if n > 0 {
			continue
		}
		img, err := c.delete(tx, id)
		if err != nil {
			return removed, err
		}
		if img != nil {
			removed = append(removed, *img)
		}
	}
	if len(removed) > 0 {
		logger.ForComponent(ctx, "orphans").Infof("deleted %d orphaned image(s)", len(removed))
	}
	return removed, nil
}

// CollectSnapshot deletes the images the snapshot recorded as unreferenced elsewhere
func (c *OrphanCollector) CollectSnapshot(ctx context.Context, tx repository.StoreInterface, snap ReferenceSnapshot) ([]models.Image, error) {
	var removed []models.Image
	for id, others := range snap {
		if others > 0 {
			continue
		}
		img, err := c.delete(tx, id)
		if err != nil {
			return removed, err
		}
		if img != nil {
			removed = append(removed, *img)
		}
	}
	if len(removed) > 0 {
		logger.ForComponent(ctx, "orphans").Infof("deleted %d orphaned image(s)", len(removed))
	}
	return removed, nil
}

func (c *OrphanCollector) delete(tx repository.StoreInterface, id uuid.UUID) (*models.Image, error) {
	img, err := tx.Images().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load image %s: %w", id, err)
	}
	if err := tx.Images().Delete(id); err != nil {
		return nil, fmt.Errorf("delete image %s: %w", id, err)
	}
	return img, nil
}

package service

import (
	"context"
	"fmt"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/storage"

	"github.com/google/uuid"
)

// AssociationManager replaces an accommodation's feature, amenity and image
// link sets and re-homes newly attached image files.
type AssociationManager struct {
	relocator *storage.Relocator
}

// NewAssociationManager creates a new association manager
func NewAssociationManager(relocator *storage.Relocator) *AssociationManager {
	return &AssociationManager{relocator: relocator}
}

// ReplaceLinks deletes all links of the category for the accommodation and
// inserts one per id in order. Duplicate ids are collapsed and every id must
// name an existing master row.
func (m *AssociationManager) ReplaceLinks(tx repository.StoreInterface, accommodationID uuid.UUID, category models.LinkCategory, ids []uuid.UUID) error {
	ids = uniqueIDs(ids)

	if len(ids) > 0 {
		found, err := tx.Links().CountExisting(category, ids)
		if err != nil {
			return fmt.Errorf("check %s: %w", category, err)
		}
		if found != int64(len(ids)) {
			return fmt.Errorf("%s: %w", category, apperrors.ErrUnknownReference)
		}
	}

	if err := tx.Links().Replace(accommodationID, category, ids); err != nil {
		return fmt.Errorf("replace %s links: %w", category, err)
	}
	return nil
}

// AttachImages relocates each image's file under the accommodation and saves
// the new path. Images stored under another owner's folder are rejected as
// unknown references. Move failures are logged and do not fail the call.
func (m *AssociationManager) AttachImages(ctx context.Context, tx repository.StoreInterface, owner string, accommodationID uuid.UUID, imageIDs []uuid.UUID) error {
	if len(imageIDs) == 0 {
		return nil
	}
	log := logger.ForComponent(ctx, "association")

	images, err := tx.Images().GetByIDs(imageIDs)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}

	layout := m.relocator.Layout()
	for i := range images {
		if layout.IsNamespaced(images[i].Path) && !layout.Within(images[i].Path, layout.OwnerDir(owner)) {
			return fmt.Errorf("image %s: %w", images[i].ID, apperrors.ErrUnknownReference)
		}
	}

	for i := range images {
		img := &images[i]
		if err := m.relocator.Relocate(ctx, img, owner, accommodationID); err != nil {
			log.WithError(err).Errorf("failed to move image %s", img.ID)
		}
		if err := tx.Images().UpdatePath(img.ID, img.Path); err != nil {
			return fmt.Errorf("update image path: %w", err)
		}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// subtractIDs returns the ids of a that are not in b, in a's order
func subtractIDs(a, b []uuid.UUID) []uuid.UUID {
	drop := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		drop[id] = struct{}{}
	}
	var out []uuid.UUID
	for _, id := range a {
		if _, ok := drop[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

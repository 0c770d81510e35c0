package storage

import (
	"context"
	"errors"
	"fmt"
	"path"

	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/logger"

	"github.com/google/uuid"
)

// Relocator moves image files between locations in the upload tree and keeps
// the image's stored path in step.
type Relocator struct {
	store  BlobStore
	layout Layout
}

// NewRelocator creates a new relocator
func NewRelocator(store BlobStore, layout Layout) *Relocator {
	return &Relocator{store: store, layout: layout}
}

// Layout returns the relocator's path layout
func (r *Relocator) Layout() Layout {
	return r.layout
}

// SourceKey resolves the blob key an image currently lives at. Paths outside
// the namespace are treated as legacy owner-relative uploads.
func (r *Relocator) SourceKey(img *models.Image, owner string) string {
	if r.layout.IsNamespaced(img.Path) {
		return r.layout.Key(img.Path)
	}
	return path.Join(owner, path.Base(img.Path))
}

// Relocate moves img under the accommodation's images folder and sets
// img.Path to the destination. img.Path is updated whatever happens to the
// file: a missing source is logged and skipped, and any other move failure
// is returned for the caller to log. Persisting img.Path is the caller's job.
func (r *Relocator) Relocate(ctx context.Context, img *models.Image, owner string, accommodationID uuid.UUID) error {
	log := logger.ForComponent(ctx, "relocator").WithFields(map[string]interface{}{
		"image_id":         img.ID.String(),
		"accommodation_id": accommodationID.String(),
	})
	return r.moveTo(log, img, owner, r.layout.ImagePath(owner, accommodationID, path.Base(img.Path)))
}

// Detach moves img back to the owner's unattached folder and sets img.Path
// to the destination, with the same missing-source handling as Relocate.
func (r *Relocator) Detach(ctx context.Context, img *models.Image, owner string) error {
	log := logger.ForComponent(ctx, "relocator").WithField("image_id", img.ID.String())
	return r.moveTo(log, img, owner, r.layout.UnattachedPath(owner, path.Base(img.Path)))
}

func (r *Relocator) moveTo(log *logger.Logger, img *models.Image, owner, dest string) error {
	srcKey := r.SourceKey(img, owner)
	dstKey := r.layout.Key(dest)

	if srcKey == dstKey {
		img.Path = dest
		return nil
	}

	err := r.store.Move(srcKey, dstKey)
	img.Path = dest

	switch {
	case err == nil:
		log.Debugf("moved %s to %s", srcKey, dstKey)
		return nil
	case errors.Is(err, ErrBlobNotFound):
		log.Warnf("source file %s missing, path updated without move", srcKey)
		return nil
	default:
		return fmt.Errorf("move %s to %s: %w", srcKey, dstKey, err)
	}
}

// RemoveAccommodationFolder deletes an accommodation's whole folder
func (r *Relocator) RemoveAccommodationFolder(owner string, accommodationID uuid.UUID) error {
	return r.store.RemoveAll(r.layout.Key(r.layout.AccommodationDir(owner, accommodationID)))
}

// RemoveFile deletes the file behind a stored path
func (r *Relocator) RemoveFile(stored string) error {
	if !r.layout.IsNamespaced(stored) {
		return nil
	}
	return r.store.Remove(r.layout.Key(stored))
}

package service

import (
	"context"
	"errors"
	"fmt"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccommodationService orchestrates accommodation create, update and delete
// across the row store, the upload tree and the activity log.
type AccommodationService struct {
	store         repository.StoreInterface
	associations  *AssociationManager
	orphans       *OrphanCollector
	activities    *ActivityRecorder
	relocator     *storage.Relocator
	validator     *validator.Validate
	publicBaseURL string
}

// NewAccommodationService creates a new accommodation service
func NewAccommodationService(store repository.StoreInterface, relocator *storage.Relocator, validator *validator.Validate, publicBaseURL string) *AccommodationService {
	return &AccommodationService{
		store:         store,
		associations:  NewAssociationManager(relocator),
		orphans:       NewOrphanCollector(),
		activities:    NewActivityRecorder(),
		relocator:     relocator,
		validator:     validator,
		publicBaseURL: publicBaseURL,
	}
}

// CreateAccommodationRequest represents the data needed to create an accommodation.
// Counts are pointers so that an explicit zero still counts as present.
type CreateAccommodationRequest struct {
	Title             string      `json:"title" validate:"required,max=255" example:"Harbour View Villa"`
	Location          string      `json:"location" validate:"required,max=255" example:"Sydney"`
	Capacity          *int        `json:"capacity" validate:"required,min=0" example:"4"`
	Description       string      `json:"description" validate:"required"`
	AccommodationType string      `json:"accommodationType" validate:"required,max=255" example:"Villa"`
	Bedrooms          *int        `json:"bedrooms" validate:"required,min=0" example:"2"`
	Bathrooms         *int        `json:"bathrooms" validate:"required,min=0" example:"1"`
	Gender            string      `json:"gender" validate:"required,max=100" example:"Any"`
	SupportLevel      string      `json:"supportLevel" validate:"max=255"`
	Status            string      `json:"status" validate:"required,max=50" example:"Available"`
	Features          []uuid.UUID `json:"features"`
	Amenities         []uuid.UUID `json:"amenities"`
	Images            []uuid.UUID `json:"images"`
}

// UpdateAccommodationRequest carries the fields to change. A nil field or
// association list is left untouched; an empty list clears the set.
type UpdateAccommodationRequest struct {
	Title             *string     `json:"title" validate:"omitempty,max=255"`
	Location          *string     `json:"location" validate:"omitempty,max=255"`
	Capacity          *int        `json:"capacity" validate:"omitempty,min=0"`
	Description       *string     `json:"description"`
	Bedrooms          *int        `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms         *int        `json:"bathrooms" validate:"omitempty,min=0"`
	Gender            *string     `json:"gender" validate:"omitempty,max=100"`
	Status            *string     `json:"status" validate:"omitempty,max=50"`
	AccommodationType *string     `json:"accommodationType" validate:"omitempty,max=255"`
	SupportLevel      *string     `json:"supportLevel" validate:"omitempty,max=255"`
	Features          []uuid.UUID `json:"features"`
	Amenities         []uuid.UUID `json:"amenities"`
	Images            []uuid.UUID `json:"images"`
}

// AccommodationResponse represents an accommodation with its association sets
type AccommodationResponse struct {
	ID                uuid.UUID   `json:"id"`
	Title             string      `json:"title"`
	Location          string      `json:"location"`
	Capacity          int         `json:"capacity"`
	Description       string      `json:"description"`
	AccommodationType string      `json:"accommodationType"`
	Bedrooms          int         `json:"bedrooms"`
	Bathrooms         int         `json:"bathrooms"`
	Gender            string      `json:"gender"`
	SupportLevel      string      `json:"supportLevel"`
	Status            string      `json:"status"`
	Features          []uuid.UUID `json:"features"`
	Amenities         []uuid.UUID `json:"amenities"`
	Images            []string    `json:"images"`
	Owner             string      `json:"owner"`
}

// AccommodationListResponse is the swagger schema for accommodation lists
type AccommodationListResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
}

// ListForOwner returns the caller's accommodations with stored image paths
func (s *AccommodationService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]AccommodationResponse, error) {
	accs, err := s.store.Accommodations().GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	names, err := s.ownerNames(accs)
	if err != nil {
		return nil, err
	}
	out := make([]AccommodationResponse, 0, len(accs))
	for i := range accs {
		out = append(out, toAccommodationResponse(&accs[i], names[accs[i].OwnerID], nil))
	}
	return out, nil
}

// ListPublic returns every accommodation with images resolved to public URLs
func (s *AccommodationService) ListPublic(ctx context.Context) ([]AccommodationResponse, error) {
	accs, err := s.store.Accommodations().GetAll()
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	names, err := s.ownerNames(accs)
	if err != nil {
		return nil, err
	}
	toURL := func(p string) string { return storage.PublicURL(s.publicBaseURL, p) }
	out := make([]AccommodationResponse, 0, len(accs))
	for i := range accs {
		out = append(out, toAccommodationResponse(&accs[i], names[accs[i].OwnerID], toURL))
	}
	return out, nil
}

func (s *AccommodationService) ownerNames(accs []models.Accommodation) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(accs))
	for _, a := range accs {
		ids = append(ids, a.OwnerID)
	}
	users, err := s.store.Users().GetByIDs(uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("load owners: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func toAccommodationResponse(a *models.Accommodation, owner string, imageURL func(string) string) AccommodationResponse {
	images := a.ImagePaths()
	if imageURL != nil {
		for i, p := range images {
			images[i] = imageURL(p)
		}
	}
	return AccommodationResponse{
		ID:                a.ID,
		Title:             a.Title,
		Location:          a.Location,
		Capacity:          a.Capacity,
		Description:       a.Description,
		AccommodationType: a.AccommodationType,
		Bedrooms:          a.Bedrooms,
		Bathrooms:         a.Bathrooms,
		Gender:            a.Gender,
		SupportLevel:      a.SupportLevel,
		Status:            a.Status,
		Features:          a.FeatureIDs(),
		Amenities:         a.AmenityIDs(),
		Images:            images,
		Owner:             owner,
	}
}

// Create inserts the accommodation and its links in one transaction, moves
// attached image files under the new id, then records an add entry.
func (s *AccommodationService) Create(ctx context.Context, ownerID uuid.UUID, req *CreateAccommodationRequest) (uuid.UUID, error) {
	if err := s.validator.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", apperrors.ErrMissingRequiredFields, err)
	}
	log := logger.ForComponent(ctx, "lifecycle")

	acc := &models.Accommodation{
		OwnerID:           ownerID,
		Title:             req.Title,
		Location:          req.Location,
		Capacity:          *req.Capacity,
		Description:       req.Description,
		AccommodationType: req.AccommodationType,
		Bedrooms:          *req.Bedrooms,
		Bathrooms:         *req.Bathrooms,
		Gender:            req.Gender,
		SupportLevel:      req.SupportLevel,
		Status:            req.Status,
	}
	owner := ownerID.String()

	err := s.store.Transaction(func(tx repository.StoreInterface) error {
		if err := tx.Accommodations().Create(acc); err != nil {
			return apperrors.NewPersistenceError("create accommodation", err)
		}
		if err := s.associations.ReplaceLinks(tx, acc.ID, models.CategoryFeatures, req.Features); err != nil {
			return err
		}
		if err := s.associations.ReplaceLinks(tx, acc.ID, models.CategoryAmenities, req.Amenities); err != nil {
			return err
		}
		if err := s.associations.ReplaceLinks(tx, acc.ID, models.CategoryImages, req.Images); err != nil {
			return err
		}
		return s.associations.AttachImages(ctx, tx, owner, acc.ID, uniqueIDs(req.Images))
	})
	if err != nil {
		return uuid.Nil, asPersistence("create accommodation", err)
	}

	id := acc.ID
	if _, err := s.activities.Record(s.store.Activities(), ownerID, models.ActionAdd, &id, acc.Title, detailsCreated, nil); err != nil {
		log.WithError(err).Errorf("failed to record activity for created accommodation %s", acc.ID)
	}

	log.Infof("created accommodation %s", acc.ID)
	return acc.ID, nil
}

// Update applies scalar changes and replaces every association set present in
// the request, collecting images left unreferenced, in one transaction.
func (s *AccommodationService) Update(ctx context.Context, ownerID, id uuid.UUID, req *UpdateAccommodationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.NewValidationError("", "invalid accommodation fields"), err)
	}
	log := logger.ForComponent(ctx, "lifecycle")

	acc, err := s.store.Accommodations().GetByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccommodationNotFound
		}
		return fmt.Errorf("load accommodation: %w", err)
	}

	updates, changed := scalarUpdates(req)
	if req.Title != nil {
		acc.Title = *req.Title
	}

	sets := []struct {
		category models.LinkCategory
		ids      []uuid.UUID
	}{
		{models.CategoryFeatures, req.Features},
		{models.CategoryAmenities, req.Amenities},
		{models.CategoryImages, req.Images},
	}

	var removed []models.Image
	err = s.store.Transaction(func(tx repository.StoreInterface) error {
		if err := tx.Accommodations().Update(id, updates); err != nil {
			return apperrors.NewPersistenceError("update accommodation", err)
		}
		for _, set := range sets {
			if set.ids == nil {
				continue
			}
			previous, err := tx.Links().ListIDs(id, set.category)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", set.category, err)
			}
			if err := s.associations.ReplaceLinks(tx, id, set.category, set.ids); err != nil {
				return err
			}
			changed = append(changed, string(set.category))

			if set.category != models.CategoryImages {
				continue
			}
			next := uniqueIDs(set.ids)
			if err := s.associations.AttachImages(ctx, tx, ownerID.String(), id, subtractIDs(next, previous)); err != nil {
				return err
			}
			gone, err := s.orphans.Collect(ctx, tx, subtractIDs(previous, next))
			if err != nil {
				return err
			}
			removed = append(removed, gone...)
		}
		return nil
	})
	if err != nil {
		return asPersistence("update accommodation", err)
	}

	s.removeFiles(ctx, removed)

	if _, err := s.activities.Record(s.store.Activities(), ownerID, models.ActionEdit, &id, acc.Title, EditDetails(changed), changed); err != nil {
		log.WithError(err).Errorf("failed to record activity for updated accommodation %s", id)
	}
	return nil
}

// scalarUpdates maps present request fields to columns, listing changed
// field names in a fixed order
func scalarUpdates(req *UpdateAccommodationRequest) (map[string]interface{}, []string) {
	updates := map[string]interface{}{}
	var changed []string
	setString := func(name, column string, v *string) {
		if v != nil {
			updates[column] = *v
			changed = append(changed, name)
		}
	}
	setInt := func(name, column string, v *int) {
		if v != nil {
			updates[column] = *v
			changed = append(changed, name)
		}
	}

	setString("title", "title", req.Title)
	setString("location", "location", req.Location)
	setInt("capacity", "capacity", req.Capacity)
	setString("description", "description", req.Description)
	setInt("bedrooms", "bedrooms", req.Bedrooms)
	setInt("bathrooms", "bathrooms", req.Bathrooms)
	setString("gender", "gender", req.Gender)
	setString("status", "status", req.Status)
	setString("accommodationType", "accommodation_type", req.AccommodationType)
	setString("supportLevel", "support_level", req.SupportLevel)
	return updates, changed
}

// Delete removes the accommodation folder, its links and any images only it
// referenced, then the accommodation row. Files of images still linked by
// other accommodations are moved out of the folder first. Only the final row
// delete can fail the operation.
func (s *AccommodationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.ForComponent(ctx, "lifecycle").WithField("accommodation_id", id.String())

	acc, err := s.store.Accommodations().GetByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccommodationNotFound
		}
		return fmt.Errorf("load accommodation: %w", err)
	}
	title := acc.Title

	imageIDs := acc.ImageIDs()
	snap, err := s.orphans.Snapshot(s.store, id, imageIDs)
	if err != nil {
		log.WithError(err).Warn("failed to snapshot image references")
	}

	// The folder may hold files of images other accommodations still link;
	// it is only removed once those have been moved out.
	if snap != nil && s.rehomeShared(ctx, acc, snap) {
		if err := s.relocator.RemoveAccommodationFolder(ownerID.String(), id); err != nil {
			log.WithError(err).Error("failed to remove accommodation folder")
		}
	} else {
		log.Warn("keeping accommodation folder")
	}

	if err := s.store.Transaction(func(tx repository.StoreInterface) error {
		return tx.Links().DeleteAll(id)
	}); err != nil {
		log.WithError(err).Error("failed to remove link rows")
	}

	var removed []models.Image
	if err := s.store.Transaction(func(tx repository.StoreInterface) error {
		var err error
		if snap != nil {
			removed, err = s.orphans.CollectSnapshot(ctx, tx, snap)
		} else {
			removed, err = s.orphans.Collect(ctx, tx, imageIDs)
		}
		return err
	}); err != nil {
		removed = nil
		log.WithError(err).Error("failed to clean up image rows")
	}
	s.removeFiles(ctx, removed)

	if err := s.store.Accommodations().Delete(id); err != nil {
		log.WithError(err).Error("failed to delete accommodation row")
		return apperrors.NewPersistenceError("Failed to delete accommodation", err)
	}

	if _, err := s.activities.Record(s.store.Activities(), ownerID, models.ActionDelete, nil, title, detailsDeleted, nil); err != nil {
		log.WithError(err).Error("failed to record activity for deleted accommodation")
	}

	log.Info("deleted accommodation")
	return nil
}

// rehomeShared moves the files of images that other accommodations still link
// out of acc's folder: to the most recent other holder, or back to the owner's
// unattached folder. It reports whether the folder is safe to remove.
func (s *AccommodationService) rehomeShared(ctx context.Context, acc *models.Accommodation, snap ReferenceSnapshot) bool {
	log := logger.ForComponent(ctx, "lifecycle").WithField("accommodation_id", acc.ID.String())
	owner := acc.OwnerID.String()
	layout := s.relocator.Layout()
	dir := layout.AccommodationDir(owner, acc.ID)

	safe := true
	for _, link := range acc.Images {
		if link.Image == nil || snap[link.ImageID] == 0 || !layout.Within(link.Image.Path, dir) {
			continue
		}
		img := *link.Image

		holders, err := s.store.Links().ListImageHolders(img.ID, acc.ID)
		if err != nil {
			log.WithError(err).Errorf("failed to look up holders of image %s", img.ID)
			safe = false
			continue
		}
		if len(holders) > 0 {
			err = s.relocator.Relocate(ctx, &img, owner, holders[0])
		} else {
			err = s.relocator.Detach(ctx, &img, owner)
		}
		if err != nil {
			log.WithError(err).Errorf("failed to move shared image %s", img.ID)
			safe = false
			continue
		}
		if err := s.store.Images().UpdatePath(img.ID, img.Path); err != nil {
			log.WithError(err).Errorf("failed to save new path of shared image %s", img.ID)
		}
	}
	return safe
}

// DeleteAllForOwner deletes every accommodation of an owner through Delete
func (s *AccommodationService) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	ids, err := s.store.Accommodations().ListIDsByOwner(ownerID)
	if err != nil {
		return fmt.Errorf("list accommodations: %w", err)
	}
	for _, id := range ids {
		if err := s.Delete(ctx, ownerID, id); err != nil {
			return err
		}
	}
	return nil
}

// removeFiles deletes the files of image rows that are already gone
func (s *AccommodationService) removeFiles(ctx context.Context, images []models.Image) {
	for _, img := range images {
		if err := s.relocator.RemoveFile(img.Path); err != nil {
			logger.ForComponent(ctx, "lifecycle").WithError(err).Warnf("failed to remove file of image %s", img.ID)
		}
	}
}

// asPersistence passes typed application errors through and wraps anything
// else as a persistence failure
func asPersistence(op string, err error) error {
	if apperrors.IsValidation(err) || apperrors.IsNotFound(err) || apperrors.IsPersistence(err) {
		return err
	}
	return apperrors.NewPersistenceError(op, err)
}

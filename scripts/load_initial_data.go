package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"accommodation-portal-backend/internal/config"
	"accommodation-portal-backend/internal/database"
	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/service"
	"accommodation-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the demo YAML files
type OwnerData struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type RoomData struct {
	Label  string `yaml:"label"`
	Status string `yaml:"status"`
}

type AccommodationData struct {
	Owner             string     `yaml:"owner"`
	Title             string     `yaml:"title"`
	Location          string     `yaml:"location"`
	Capacity          int        `yaml:"capacity"`
	Description       string     `yaml:"description"`
	AccommodationType string     `yaml:"accommodation_type"`
	Bedrooms          int        `yaml:"bedrooms"`
	Bathrooms         int        `yaml:"bathrooms"`
	Gender            string     `yaml:"gender"`
	SupportLevel      string     `yaml:"support_level"`
	Status            string     `yaml:"status"`
	Features          []string   `yaml:"features"`
	Amenities         []string   `yaml:"amenities"`
	Rooms             []RoomData `yaml:"rooms,omitempty"`
}

// File structures
type OwnersFile struct {
	Owners []OwnerData `yaml:"owners"`
}

type AccommodationsFile struct {
	Accommodations []AccommodationData `yaml:"accommodations"`
}

type loader struct {
	store          *repository.Store
	catalog        *service.CatalogService
	users          *service.UserService
	accommodations *service.AccommodationService
	rooms          *service.RoomService
}

func main() {
	log.Println("🚀 Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	blobs, err := storage.NewFSBlobStore(cfg.UploadFolder)
	if err != nil {
		log.Fatalf("Failed to open upload folder: %v", err)
	}

	store := repository.NewStore(db)
	v := validator.New()
	relocator := storage.NewRelocator(blobs, storage.NewLayout(cfg.UploadNamespace))
	accommodations := service.NewAccommodationService(store, relocator, v, cfg.PublicBaseURL)
	l := &loader{
		store:          store,
		catalog:        service.NewCatalogService(store.Catalog(), v),
		users:          service.NewUserService(store.Users(), accommodations, v),
		accommodations: accommodations,
		rooms:          service.NewRoomService(store, v),
	}

	if err := l.load(context.Background(), cfg.CatalogSeedFile, "scripts/data"); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func (l *loader) load(ctx context.Context, catalogFile, dataDir string) error {
	if _, err := os.Stat(catalogFile); err == nil {
		res, err := l.catalog.SeedFromFile(ctx, catalogFile)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Printf("📋 Catalog: %d features, %d amenities created", res.Features, res.Amenities)
	}

	var owners OwnersFile
	if err := readYAML(filepath.Join(dataDir, "owners.yaml"), &owners); err != nil {
		return fmt.Errorf("failed to load owners: %w", err)
	}
	var accs AccommodationsFile
	if err := readYAML(filepath.Join(dataDir, "accommodations.yaml"), &accs); err != nil {
		return fmt.Errorf("failed to load accommodations: %w", err)
	}

	ownerMap := make(map[string]uuid.UUID)
	ownerCreated := 0
	for _, o := range owners.Owners {
		id, created, err := l.createOwner(ctx, o)
		if err != nil {
			return fmt.Errorf("failed to create owner %s: %w", o.Username, err)
		}
		ownerMap[o.Username] = id
		if created {
			ownerCreated++
		}
	}
	log.Printf("📋 Owners: %d created, %d total", ownerCreated, len(owners.Owners))

	accCreated := 0
	for _, a := range accs.Accommodations {
		created, err := l.createAccommodation(ctx, a, ownerMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create accommodation %s: %v", a.Title, err)
			continue
		}
		if created {
			accCreated++
		}
	}
	log.Printf("📋 Accommodations: %d created, %d total", accCreated, len(accs.Accommodations))
	return nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("⚠️  %s not found, skipping", path)
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func (l *loader) createOwner(ctx context.Context, o OwnerData) (uuid.UUID, bool, error) {
	if existing, err := l.store.Users().GetByUsername(o.Username); err == nil {
		return existing.ID, false, nil
	}
	role := string(models.RoleSDAOwner)
	resp, err := l.users.CreateUser(ctx, &service.CreateUserRequest{
		Name:     o.Name,
		Username: o.Username,
		Email:    o.Email,
		Password: o.Password,
		Role:     &role,
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return resp.ID, true, nil
}

func (l *loader) createAccommodation(ctx context.Context, a AccommodationData, owners map[string]uuid.UUID) (bool, error) {
	ownerID, ok := owners[a.Owner]
	if !ok {
		return false, fmt.Errorf("unknown owner %q", a.Owner)
	}

	existing, err := l.accommodations.ListForOwner(ctx, ownerID)
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if e.Title == a.Title {
			return false, nil
		}
	}

	features := make([]uuid.UUID, 0, len(a.Features))
	for _, name := range a.Features {
		f, err := l.store.Catalog().GetFeatureByName(name)
		if err != nil {
			return false, fmt.Errorf("feature %q: %w", name, err)
		}
		features = append(features, f.ID)
	}
	amenities := make([]uuid.UUID, 0, len(a.Amenities))
	for _, name := range a.Amenities {
		am, err := l.store.Catalog().GetAmenityByName(name)
		if err != nil {
			return false, fmt.Errorf("amenity %q: %w", name, err)
		}
		amenities = append(amenities, am.ID)
	}

	id, err := l.accommodations.Create(ctx, ownerID, &service.CreateAccommodationRequest{
		Title:             a.Title,
		Location:          a.Location,
		Capacity:          &a.Capacity,
		Description:       a.Description,
		AccommodationType: a.AccommodationType,
		Bedrooms:          &a.Bedrooms,
		Bathrooms:         &a.Bathrooms,
		Gender:            a.Gender,
		SupportLevel:      a.SupportLevel,
		Status:            a.Status,
		Features:          features,
		Amenities:         amenities,
		Images:            []uuid.UUID{},
	})
	if err != nil {
		return false, err
	}

	for _, r := range a.Rooms {
		label, status := r.Label, r.Status
		req := &service.RoomRequest{Label: &label}
		if status != "" {
			req.Status = &status
		}
		if _, err := l.rooms.CreateRoom(ctx, ownerID, id, req); err != nil {
			log.Printf("⚠️  Warning: failed to create room %s in %s: %v", r.Label, a.Title, err)
		}
	}
	return true, nil
}

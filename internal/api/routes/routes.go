package routes

import (
	"fmt"

	"accommodation-portal-backend/internal/api/handlers"
	"accommodation-portal-backend/internal/api/middleware"
	"accommodation-portal-backend/internal/auth"
	"accommodation-portal-backend/internal/config"
	"accommodation-portal-backend/internal/database"
	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/service"
	"accommodation-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies holds the wired stores and services shared by the HTTP
// server and the operator CLI.
type Dependencies struct {
	DB        *gorm.DB
	Store     *repository.Store
	Blobs     *storage.FSBlobStore
	Layout    storage.Layout
	Relocator *storage.Relocator

	Accommodations *service.AccommodationService
	Images         *service.ImageService
	Activities     *service.ActivityService
	Users          *service.UserService
	Catalog        *service.CatalogService
	Rooms          *service.RoomService
	Provisioning   *service.ProvisioningService
	Sweeper        *service.OrphanSweeper
	Auth           *auth.AuthService
}

// NewDependencies wires repositories, the upload tree and services from config
func NewDependencies(db *gorm.DB, cfg *config.Config) (*Dependencies, error) {
	blobs, err := storage.NewFSBlobStore(cfg.UploadFolder)
	if err != nil {
		return nil, err
	}
	return NewDependenciesWithBlobs(db, cfg, blobs)
}

// NewDependenciesWithBlobs is NewDependencies over an explicit blob store
func NewDependenciesWithBlobs(db *gorm.DB, cfg *config.Config, blobs *storage.FSBlobStore) (*Dependencies, error) {
	validate := validator.New()
	store := repository.NewStore(db)
	layout := storage.NewLayout(cfg.UploadNamespace)
	relocator := storage.NewRelocator(blobs, layout)

	accommodations := service.NewAccommodationService(store, relocator, validate, cfg.PublicBaseURL)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), store.Users())
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	return &Dependencies{
		DB:             db,
		Store:          store,
		Blobs:          blobs,
		Layout:         layout,
		Relocator:      relocator,
		Accommodations: accommodations,
		Images:         service.NewImageService(store, blobs, layout, cfg.AllowedImageExtensions, cfg.PublicBaseURL),
		Activities:     service.NewActivityService(store.Activities()),
		Users:          service.NewUserService(store.Users(), accommodations, validate),
		Catalog:        service.NewCatalogService(store.Catalog(), validate),
		Rooms:          service.NewRoomService(store, validate),
		Provisioning:   service.NewProvisioningService(store.Users()),
		Sweeper:        service.NewOrphanSweeper(store.Images(), relocator, cfg.OrphanGracePeriod()),
		Auth:           authService,
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps *Dependencies, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	authHandler := auth.NewAuthHandler(deps.Auth)
	authMiddleware := auth.NewAuthMiddleware(deps.Auth)

	healthHandler := handlers.NewHealthHandler(func() error { return database.Ping(deps.DB) })
	accommodationHandler := handlers.NewAccommodationHandler(deps.Accommodations)
	imageHandler := handlers.NewImageHandler(deps.Images, cfg.MaxUploadBytes())
	activityHandler := handlers.NewActivityHandler(deps.Activities)
	userHandler := handlers.NewUserHandler(deps.Users)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	roomHandler := handlers.NewRoomHandler(deps.Rooms)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded files, addressed by their stored path
	router.StaticFS("/"+deps.Layout.Namespace, afero.NewHttpFs(deps.Blobs.Fs()))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	public := router.Group("/api/public")
	{
		public.GET("/accommodations", accommodationHandler.ListPublic)
		public.GET("/features", catalogHandler.ListFeatures)
		public.GET("/amenities", catalogHandler.ListAmenities)
	}

	owner := router.Group("/api/sdaowner")
	owner.Use(authMiddleware.RequireAuth())
	{
		owner.GET("/get_accommodations", accommodationHandler.ListOwn)
		owner.POST("/add_accommodation", accommodationHandler.Create)
		owner.PUT("/update_accommodation/:id", accommodationHandler.Update)
		owner.DELETE("/delete_accommodation/:id", accommodationHandler.Delete)
		owner.POST("/upload_image", imageHandler.Upload)
		owner.GET("/activities", activityHandler.ListOwn)

		rooms := owner.Group("/accommodations/:id/rooms")
		{
			rooms.GET("", roomHandler.ListRooms)
			rooms.POST("", roomHandler.CreateRoom)
			rooms.PUT("/:roomId", roomHandler.UpdateRoom)
			rooms.DELETE("/:roomId", roomHandler.DeleteRoom)
		}
	}

	admin := router.Group("/api/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(string(models.RoleOwner), string(models.RoleAdmin)))
	{
		admin.GET("/users", userHandler.ListUsers)
		admin.POST("/users", userHandler.CreateUser)
		admin.PUT("/users/:id", userHandler.UpdateUser)
		admin.DELETE("/users/:id", userHandler.DeleteUser)
		admin.GET("/activities", activityHandler.ListAll)
		admin.POST("/features", catalogHandler.CreateFeature)
		admin.POST("/amenities", catalogHandler.CreateAmenity)
	}

	return router
}

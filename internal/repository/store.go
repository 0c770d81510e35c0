package repository

import (
	"gorm.io/gorm"
)

// Store bundles the repositories over one *gorm.DB handle
type Store struct {
	db *gorm.DB
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() UserRepositoryInterface {
	return NewUserRepository(s.db)
}

func (s *Store) Accommodations() AccommodationRepositoryInterface {
	return NewAccommodationRepository(s.db)
}

func (s *Store) Links() LinkRepositoryInterface {
	return NewLinkRepository(s.db)
}

func (s *Store) Images() ImageRepositoryInterface {
	return NewImageRepository(s.db)
}

func (s *Store) Activities() ActivityRepositoryInterface {
	return NewActivityRepository(s.db)
}

func (s *Store) Rooms() RoomRepositoryInterface {
	return NewRoomRepository(s.db)
}

func (s *Store) Catalog() CatalogRepositoryInterface {
	return NewCatalogRepository(s.db)
}

// Transaction runs fn inside a gorm transaction
func (s *Store) Transaction(fn func(tx StoreInterface) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

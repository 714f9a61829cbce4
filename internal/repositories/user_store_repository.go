package repositories

import (
	"fmt"
	"time"

	"nexx/internal/models"
	"nexx/internal/store"

	"github.com/google/uuid"
)

const usersKey = "users"

// StoreUserRepository keeps users in the local persistent store.
type StoreUserRepository struct {
	store *store.Store
}

// NewStoreUserRepository creates a new StoreUserRepository.
func NewStoreUserRepository(s *store.Store) *StoreUserRepository {
	return &StoreUserRepository{store: s}
}

func (r *StoreUserRepository) load() []models.User {
	var users []models.User
	r.store.Get(usersKey, &users)
	return users
}

// GetAll returns all users.
func (r *StoreUserRepository) GetAll() ([]models.User, error) {
	return r.load(), nil
}

// GetByID returns a user by ID.
func (r *StoreUserRepository) GetByID(id string) (*models.User, error) {
	for _, u := range r.load() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with ID %s not found", id)
}

// GetByUsername returns a user by exact username match.
func (r *StoreUserRepository) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.load() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with username %s not found", username)
}

// GetByEmail returns a user by exact email match.
func (r *StoreUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.load() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// Create assigns an ID and creation timestamp and appends the user.
func (r *StoreUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	users := append(r.load(), *user)
	if !r.store.Set(usersKey, users) {
		return fmt.Errorf("failed to persist users collection")
	}
	return nil
}

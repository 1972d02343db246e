package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// UserRepository defines database operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Count() (int64, error)
}

// UserRepositoryImpl provides methods to interact with the User model in the database.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepositoryImpl with the provided GORM database connection.
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// Create creates a new User in the database.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a User by its ID from the database.
func (r *UserRepositoryImpl) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

// GetByEmail retrieves a User by email.
func (r *UserRepositoryImpl) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	return &user, err
}

// List retrieves all Users ordered by creation time.
func (r *UserRepositoryImpl) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

// Count returns the total number of user accounts.
func (r *UserRepositoryImpl) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Count(&n).Error
	return n, err
}

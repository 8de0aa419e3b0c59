package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"homiehub/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.User, error)
	UpdateVector(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateVector(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("user_vector", vector).Error
}

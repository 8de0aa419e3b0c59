package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"homiehub/internal/models/db_models"
)

type RoomRepository interface {
	Create(ctx context.Context, room *db_models.Room) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Room, error)
	UpdateVector(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error

	// StreamNearest yields rooms in ascending Euclidean distance from
	// query, at most fetchLimit of them. The yield callback returns
	// false to stop early, which closes the underlying cursor and ends
	// index-side work. Returns the number of rows actually consumed.
	StreamNearest(ctx context.Context, query pgvector.Vector, fetchLimit int, yield func(room *db_models.Room) (bool, error)) (int, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *db_models.Room) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return uuid.Nil, err
	}
	return room.ID, nil
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*db_models.Room, error) {
	var room db_models.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) UpdateVector(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Room{}).
		Where("id = ?", id).
		Update("room_vector", vector).Error
}

func (r *roomRepository) StreamNearest(ctx context.Context, query pgvector.Vector, fetchLimit int, yield func(room *db_models.Room) (bool, error)) (int, error) {
	// <-> is the pgvector L2 distance operator; rows arrive in
	// ascending-distance order straight from the index.
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM rooms
		WHERE room_vector IS NOT NULL AND deleted_at IS NULL
		ORDER BY room_vector <-> ?
		LIMIT ?`, query, fetchLimit).Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	fetched := 0
	for rows.Next() {
		var room db_models.Room
		if err := r.db.ScanRows(rows, &room); err != nil {
			return fetched, err
		}
		fetched++

		keep, err := yield(&room)
		if err != nil {
			return fetched, err
		}
		if !keep {
			return fetched, nil
		}
	}
	return fetched, rows.Err()
}

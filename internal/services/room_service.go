package services

import (
	"context"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"homiehub/internal/models/db_models"
	"homiehub/internal/models/request_models"
	"homiehub/internal/models/response_models"
	"homiehub/internal/repositories"
	"homiehub/pkg/utils"
)

type RoomServiceInterface interface {
	CreateRoom(ctx context.Context, req *request_models.CreateRoomRequest) (*response_models.Created, error)
	GetRoomByID(ctx context.Context, id string) (*response_models.Room, error)
}

type RoomService struct {
	roomRepo repositories.RoomRepository
	logger   *zap.Logger
}

func NewRoomService(roomRepo repositories.RoomRepository, logger *zap.Logger) RoomServiceInterface {
	return &RoomService{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// CreateRoom persists the listing only; the embedding trigger computes
// the room vector asynchronously.
func (s *RoomService) CreateRoom(ctx context.Context, req *request_models.CreateRoomRequest) (*response_models.Created, error) {
	rent := req.Rent
	lease := req.LeaseDurationMonths
	availableFrom := req.AvailableFrom.Time

	room := &db_models.Room{
		Location:            req.Location,
		Address:             req.Address,
		FlatmateGender:      req.FlatmateGender,
		Rent:                &rent,
		AttachedBathroom:    req.AttachedBathroom,
		LeaseDurationMonths: &lease,
		RoomType:            req.RoomType,
		UtilitiesIncluded:   pq.StringArray(req.UtilitiesIncluded),
		Contact:             req.Contact,
		AvailableFrom:       &availableFrom,

		LifestyleFood:    req.LifestyleFood,
		LifestyleAlcohol: req.LifestyleAlcohol,
		LifestyleSmoke:   req.LifestyleSmoke,

		NumBedrooms:  req.NumBedrooms,
		NumBathrooms: req.NumBathrooms,
		Description:  req.Description,
		Amenities:    pq.StringArray(req.Amenities),
		Photos:       pq.StringArray(req.Photos),
	}

	id, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("failed to create room", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("room created", zap.String("room_id", id.String()))
	return &response_models.Created{ID: id.String()}, nil
}

func (s *RoomService) GetRoomByID(ctx context.Context, id string) (*response_models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch room", zap.String("room_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if room == nil {
		return nil, utils.ErrRoomNotFound
	}

	resp := response_models.RoomFromModel(room)
	return &resp, nil
}

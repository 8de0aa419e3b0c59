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

type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *request_models.CreateUserRequest) (*response_models.Created, error)
	GetUserByID(ctx context.Context, id string) (*response_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser persists the profile only. The preference vector is
// computed out-of-band by the embedding trigger once the row's change
// notification fires.
func (s *UserService) CreateUser(ctx context.Context, req *request_models.CreateUserRequest) (*response_models.Created, error) {
	user := &db_models.User{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		Gender:        req.Gender,
		MoveInDate:    req.MoveInDate.Time,

		GenderPreference:    req.GenderPreference,
		PreferredLocations:  pq.StringArray(req.PreferredLocations),
		BudgetMax:           req.BudgetMax,
		LeaseDurationMonths: req.LeaseDurationMonths,
		RoomTypePreference:  req.RoomTypePreference,
		AttachedBathroom:    req.AttachedBathroom,
		LifestyleFood:       req.LifestyleFood,
		LifestyleAlcohol:    req.LifestyleAlcohol,
		LifestyleSmoke:      req.LifestyleSmoke,
		UtilitiesPreference: pq.StringArray(req.UtilitiesPreference),

		Occupation: req.Occupation,
		University: req.University,
		Bio:        req.Bio,
		Interests:  pq.StringArray(req.Interests),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("user created", zap.String("user_id", id.String()))
	return &response_models.Created{ID: id.String()}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*response_models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch user", zap.String("user_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := response_models.UserFromModel(user)
	return &resp, nil
}

package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"homiehub/internal/models/db_models"
	"homiehub/internal/models/request_models"
	"homiehub/internal/models/response_models"
	"homiehub/internal/repositories"
	"homiehub/pkg/utils"
)

const (
	defaultLimit = 10

	// When hard filters are present we over-fetch so enough candidates
	// survive post-filtering without scanning the whole index. 1000 is
	// the index-side cap.
	overFetchFactor = 5
	maxFetchLimit   = 1000

	// Hard bound on the index query; a timeout surfaces as a
	// retryable failure, distinct from the slow-query log threshold.
	queryTimeout = 10 * time.Second
)

type MatchingServiceInterface interface {
	FindBestMatch(ctx context.Context, req *request_models.MatchRequest) (*response_models.MatchResponse, error)
}

type MatchingService struct {
	userRepo  repositories.UserRepository
	roomRepo  repositories.RoomRepository
	logger    *zap.Logger
	slowAfter time.Duration
}

func NewMatchingService(
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	logger *zap.Logger,
	slowAfter time.Duration,
) MatchingServiceInterface {
	return &MatchingService{
		userRepo:  userRepo,
		roomRepo:  roomRepo,
		logger:    logger,
		slowAfter: slowAfter,
	}
}

// FindBestMatch loads the user's stored vector, streams nearest rooms
// from the index and keeps the first `limit` that pass all filters.
// Stream order is ascending distance and is authoritative; no
// re-sorting happens here. Zero survivors is a normal empty result,
// not an error.
func (s *MatchingService) FindBestMatch(ctx context.Context, req *request_models.MatchRequest) (*response_models.MatchResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidLimit
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("failed to load user", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if user.UserVector == nil {
		// Never query the index with a degenerate vector.
		return nil, utils.ErrVectorNotReady
	}

	hasFilters := req.HasFilters()
	fetch := fetchLimit(limit, hasFilters)

	s.logger.Info("vector search",
		zap.String("user_id", req.UserID),
		zap.Bool("has_filters", hasFilters),
		zap.Int("fetch_limit", fetch))

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	matches := make([]response_models.Match, 0, limit)

	fetched, err := s.roomRepo.StreamNearest(queryCtx, *user.UserVector, fetch, func(room *db_models.Room) (bool, error) {
		if !matchesFilters(room, req) {
			return true, nil
		}
		matches = append(matches, response_models.Match{
			RoomID: room.ID.String(),
			Room:   response_models.RoomFromModel(room),
		})
		return len(matches) < limit, nil
	})
	if err != nil {
		s.logger.Error("vector search failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	elapsed := time.Since(start)
	s.logger.Info("search completed",
		zap.String("user_id", req.UserID),
		zap.Int("fetched", fetched),
		zap.Int("returned", len(matches)),
		zap.Int64("query_time_ms", elapsed.Milliseconds()))

	if elapsed > s.slowAfter {
		s.logger.Warn("slow query",
			zap.String("user_id", req.UserID),
			zap.Int64("query_time_ms", elapsed.Milliseconds()))
	}

	return &response_models.MatchResponse{
		UserID:       req.UserID,
		Matches:      matches,
		TotalResults: len(matches),
	}, nil
}

// fetchLimit returns how many neighbors to request from the index:
// exactly limit when no hard filters apply, otherwise
// min(limit*overFetchFactor, maxFetchLimit).
func fetchLimit(limit int, hasFilters bool) int {
	if !hasFilters {
		return limit
	}
	fetch := limit * overFetchFactor
	if fetch > maxFetchLimit {
		return maxFetchLimit
	}
	return fetch
}

// matchesFilters applies every present hard filter; all of them must
// hold. Rooms missing rent or lease duration fail those bounds, but a
// room with no availability date passes the available_from filter.
func matchesFilters(room *db_models.Room, req *request_models.MatchRequest) bool {
	if req.Location != nil && room.Location != *req.Location {
		return false
	}
	if req.MaxRent != nil {
		if room.Rent == nil || *room.Rent > *req.MaxRent {
			return false
		}
	}
	if req.RoomType != nil && room.RoomType != *req.RoomType {
		return false
	}
	if req.FlatmateGender != nil && room.FlatmateGender != *req.FlatmateGender {
		return false
	}
	if req.AttachedBathroom != nil && room.AttachedBathroom != *req.AttachedBathroom {
		return false
	}
	if req.LeaseDurationMonths != nil {
		if room.LeaseDurationMonths == nil || *room.LeaseDurationMonths > *req.LeaseDurationMonths {
			return false
		}
	}
	if req.AvailableFrom != nil && room.AvailableFrom != nil {
		if room.AvailableFrom.After(req.AvailableFrom.Time) {
			return false
		}
	}
	return true
}

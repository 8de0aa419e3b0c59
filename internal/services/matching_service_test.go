package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homiehub/internal/models/db_models"
	"homiehub/internal/models/request_models"
	"homiehub/pkg/utils"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func datePtr(v string) *time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return &t
}

type fakeUserRepo struct {
	users       map[string]*db_models.User
	updateCalls int
}

func (f *fakeUserRepo) Create(_ context.Context, user *db_models.User) (uuid.UUID, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) UpdateVector(_ context.Context, id uuid.UUID, vector pgvector.Vector) error {
	f.updateCalls++
	if user, ok := f.users[id.String()]; ok {
		user.UserVector = &vector
	}
	return nil
}

// fakeRoomRepo replays a fixed stream in order and counts how many
// rows the caller actually pulled.
type fakeRoomRepo struct {
	rooms          []*db_models.Room
	lastFetchLimit int
	pulls          int
	updateCalls    int
}

func (f *fakeRoomRepo) Create(_ context.Context, room *db_models.Room) (uuid.UUID, error) {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	f.rooms = append(f.rooms, room)
	return room.ID, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id string) (*db_models.Room, error) {
	for _, room := range f.rooms {
		if room.ID.String() == id {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) UpdateVector(_ context.Context, id uuid.UUID, vector pgvector.Vector) error {
	f.updateCalls++
	for _, room := range f.rooms {
		if room.ID == id {
			room.RoomVector = &vector
		}
	}
	return nil
}

func (f *fakeRoomRepo) StreamNearest(_ context.Context, _ pgvector.Vector, fetchLimit int, yield func(room *db_models.Room) (bool, error)) (int, error) {
	f.lastFetchLimit = fetchLimit
	fetched := 0
	for _, room := range f.rooms {
		if fetched >= fetchLimit {
			break
		}
		fetched++
		f.pulls++
		keep, err := yield(room)
		if err != nil {
			return fetched, err
		}
		if !keep {
			break
		}
	}
	return fetched, nil
}

func testVector() *pgvector.Vector {
	v := pgvector.NewVector(make([]float32, 11))
	return &v
}

func readyUser(id uuid.UUID) *db_models.User {
	return &db_models.User{
		BaseModel:  db_models.BaseModel{ID: id},
		UserVector: testVector(),
	}
}

func streamRoom(location string, rent int) *db_models.Room {
	return &db_models.Room{
		BaseModel:           db_models.BaseModel{ID: uuid.New()},
		Location:            location,
		Rent:                intPtr(rent),
		RoomType:            "Private",
		FlatmateGender:      "Mixed",
		AttachedBathroom:    "Yes",
		LeaseDurationMonths: intPtr(12),
		AvailableFrom:       datePtr("2026-09-01"),
		RoomVector:          testVector(),
	}
}

func newTestMatchingService(userRepo *fakeUserRepo, roomRepo *fakeRoomRepo) MatchingServiceInterface {
	return NewMatchingService(userRepo, roomRepo, zap.NewNop(), 500*time.Millisecond)
}

func TestFetchLimitPolicy(t *testing.T) {
	assert.Equal(t, 10, fetchLimit(10, false))
	assert.Equal(t, 7, fetchLimit(7, false))
	assert.Equal(t, 50, fetchLimit(10, true))
	assert.Equal(t, 1000, fetchLimit(300, true))
}

func TestMatchesFiltersRentCeiling(t *testing.T) {
	req := &request_models.MatchRequest{MaxRent: intPtr(1500)}

	roomA := streamRoom("Boston", 1400)
	roomB := streamRoom("Boston", 1600)

	assert.True(t, matchesFilters(roomA, req))
	assert.False(t, matchesFilters(roomB, req))

	roomA.Rent = nil
	assert.False(t, matchesFilters(roomA, req), "missing rent fails the ceiling")
}

func TestMatchesFiltersExactMatchFields(t *testing.T) {
	room := streamRoom("Cambridge", 1200)

	assert.True(t, matchesFilters(room, &request_models.MatchRequest{Location: strPtr("Cambridge")}))
	assert.False(t, matchesFilters(room, &request_models.MatchRequest{Location: strPtr("Boston")}))
	assert.True(t, matchesFilters(room, &request_models.MatchRequest{RoomType: strPtr("Private")}))
	assert.False(t, matchesFilters(room, &request_models.MatchRequest{RoomType: strPtr("Shared")}))
	assert.False(t, matchesFilters(room, &request_models.MatchRequest{FlatmateGender: strPtr("Female")}))
	assert.False(t, matchesFilters(room, &request_models.MatchRequest{AttachedBathroom: strPtr("No")}))
}

func TestMatchesFiltersLeaseDuration(t *testing.T) {
	room := streamRoom("Boston", 1200)
	room.LeaseDurationMonths = intPtr(6)

	assert.True(t, matchesFilters(room, &request_models.MatchRequest{LeaseDurationMonths: intPtr(12)}))
	assert.False(t, matchesFilters(room, &request_models.MatchRequest{LeaseDurationMonths: intPtr(3)}))

	room.LeaseDurationMonths = nil
	assert.False(t, matchesFilters(room, &request_models.MatchRequest{LeaseDurationMonths: intPtr(12)}),
		"missing lease duration fails the bound")
}

func TestMatchesFiltersAvailableFrom(t *testing.T) {
	wanted := utils.NewDateOnly(*datePtr("2026-09-15"))
	req := &request_models.MatchRequest{AvailableFrom: &wanted}

	room := streamRoom("Boston", 1200)
	room.AvailableFrom = datePtr("2026-09-01")
	assert.True(t, matchesFilters(room, req), "available before the requested date passes")

	room.AvailableFrom = datePtr("2026-10-01")
	assert.False(t, matchesFilters(room, req), "available after the requested date fails")

	// Unlike rent and lease, a room with no availability date passes.
	room.AvailableFrom = nil
	assert.True(t, matchesFilters(room, req))
}

func TestFindBestMatchEmptyFiltersPass(t *testing.T) {
	room := streamRoom("Boston", 1200)
	assert.True(t, matchesFilters(room, &request_models.MatchRequest{}))
}

func TestFindBestMatchUserNotFound(t *testing.T) {
	svc := newTestMatchingService(&fakeUserRepo{users: map[string]*db_models.User{}}, &fakeRoomRepo{})

	_, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{UserID: uuid.NewString()})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestFindBestMatchVectorNotReady(t *testing.T) {
	userID := uuid.New()
	user := readyUser(userID)
	user.UserVector = nil

	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): user}}
	roomRepo := &fakeRoomRepo{}
	svc := newTestMatchingService(userRepo, roomRepo)

	_, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{UserID: userID.String()})
	assert.ErrorIs(t, err, utils.ErrVectorNotReady)
	assert.Zero(t, roomRepo.pulls, "no index query before the vector exists")
}

func TestFindBestMatchPreservesStreamOrder(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): readyUser(userID)}}

	near := streamRoom("Cambridge", 1100)
	mid := streamRoom("Boston", 1300)
	far := streamRoom("Somerville", 1450)
	roomRepo := &fakeRoomRepo{rooms: []*db_models.Room{near, mid, far}}

	svc := newTestMatchingService(userRepo, roomRepo)
	resp, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{UserID: userID.String()})
	require.NoError(t, err)

	require.Equal(t, 3, resp.TotalResults)
	assert.Equal(t, near.ID.String(), resp.Matches[0].RoomID)
	assert.Equal(t, mid.ID.String(), resp.Matches[1].RoomID)
	assert.Equal(t, far.ID.String(), resp.Matches[2].RoomID)
}

func TestFindBestMatchFiltersInStreamOrder(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): readyUser(userID)}}

	cheap := streamRoom("Boston", 1400)
	pricey := streamRoom("Boston", 1600)
	cheaper := streamRoom("Boston", 1000)
	roomRepo := &fakeRoomRepo{rooms: []*db_models.Room{cheap, pricey, cheaper}}

	svc := newTestMatchingService(userRepo, roomRepo)
	resp, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{
		UserID:  userID.String(),
		MaxRent: intPtr(1500),
	})
	require.NoError(t, err)

	require.Equal(t, 2, resp.TotalResults)
	assert.Equal(t, cheap.ID.String(), resp.Matches[0].RoomID)
	assert.Equal(t, cheaper.ID.String(), resp.Matches[1].RoomID)
}

func TestFindBestMatchOverFetchesWithFilters(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): readyUser(userID)}}
	roomRepo := &fakeRoomRepo{}

	svc := newTestMatchingService(userRepo, roomRepo)
	_, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{
		UserID:   userID.String(),
		Location: strPtr("Boston"),
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, roomRepo.lastFetchLimit)

	_, err = svc.FindBestMatch(context.Background(), &request_models.MatchRequest{UserID: userID.String(), Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, roomRepo.lastFetchLimit)
}

func TestFindBestMatchTerminatesEarly(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): readyUser(userID)}}

	roomRepo := &fakeRoomRepo{}
	for i := 0; i < 40; i++ {
		roomRepo.rooms = append(roomRepo.rooms, streamRoom("Boston", 1000+i))
	}

	svc := newTestMatchingService(userRepo, roomRepo)
	resp, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{
		UserID:   userID.String(),
		Location: strPtr("Boston"),
		Limit:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalResults)
	assert.Equal(t, 2, roomRepo.pulls, "stream must not be consumed past the limit")
}

func TestFindBestMatchZeroSurvivorsIsSuccess(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): readyUser(userID)}}
	roomRepo := &fakeRoomRepo{rooms: []*db_models.Room{streamRoom("Boston", 2000)}}

	svc := newTestMatchingService(userRepo, roomRepo)
	resp, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{
		UserID:  userID.String(),
		MaxRent: intPtr(900),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Matches)
	assert.Equal(t, 0, resp.TotalResults)
	assert.Equal(t, userID.String(), resp.UserID)
}

func TestFindBestMatchDefaultLimit(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{userID.String(): readyUser(userID)}}

	roomRepo := &fakeRoomRepo{}
	for i := 0; i < 15; i++ {
		roomRepo.rooms = append(roomRepo.rooms, streamRoom("Boston", 1000+i))
	}

	svc := newTestMatchingService(userRepo, roomRepo)
	resp, err := svc.FindBestMatch(context.Background(), &request_models.MatchRequest{UserID: userID.String()})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.TotalResults)
}

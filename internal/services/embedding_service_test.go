package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homiehub/internal/models/db_models"
	"homiehub/internal/vectorize"
)

func newTestEmbeddingService(userRepo *fakeUserRepo, roomRepo *fakeRoomRepo) EmbeddingServiceInterface {
	return NewEmbeddingService(userRepo, roomRepo, zap.NewNop())
}

func plainRoom() *db_models.Room {
	return &db_models.Room{
		BaseModel:           db_models.BaseModel{ID: uuid.New()},
		Location:            "Cambridge",
		FlatmateGender:      "Mixed",
		Rent:                intPtr(1200),
		AttachedBathroom:    "Yes",
		LeaseDurationMonths: intPtr(12),
		RoomType:            "Shared",
		UtilitiesIncluded:   []string{"Heat", "Water"},
	}
}

func TestHandleChangeComputesAndStoresRoomVector(t *testing.T) {
	room := plainRoom()
	roomRepo := &fakeRoomRepo{rooms: []*db_models.Room{room}}
	svc := newTestEmbeddingService(&fakeUserRepo{users: map[string]*db_models.User{}}, roomRepo)

	err := svc.HandleChange(context.Background(), RecordChange{
		Collection: CollectionRooms,
		DocumentID: room.ID.String(),
		Kind:       "insert",
	})
	require.NoError(t, err)

	require.Equal(t, 1, roomRepo.updateCalls)
	require.NotNil(t, room.RoomVector)
	assert.Len(t, room.RoomVector.Slice(), vectorize.Dim)
}

func TestHandleChangeIsIdempotent(t *testing.T) {
	room := plainRoom()
	roomRepo := &fakeRoomRepo{rooms: []*db_models.Room{room}}
	svc := newTestEmbeddingService(&fakeUserRepo{users: map[string]*db_models.User{}}, roomRepo)

	ev := RecordChange{Collection: CollectionRooms, DocumentID: room.ID.String(), Kind: "insert"}

	require.NoError(t, svc.HandleChange(context.Background(), ev))
	require.NoError(t, svc.HandleChange(context.Background(), ev))

	assert.Equal(t, 1, roomRepo.updateCalls, "second delivery must be a no-op")
}

func TestHandleChangeMissingDocumentIsNoOp(t *testing.T) {
	roomRepo := &fakeRoomRepo{}
	svc := newTestEmbeddingService(&fakeUserRepo{users: map[string]*db_models.User{}}, roomRepo)

	err := svc.HandleChange(context.Background(), RecordChange{
		Collection: CollectionRooms,
		DocumentID: uuid.NewString(),
		Kind:       "insert",
	})

	assert.NoError(t, err)
	assert.Zero(t, roomRepo.updateCalls)
}

func TestHandleChangeUnknownCollectionIsIgnored(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{}}
	roomRepo := &fakeRoomRepo{}
	svc := newTestEmbeddingService(userRepo, roomRepo)

	err := svc.HandleChange(context.Background(), RecordChange{
		Collection: "bookings",
		DocumentID: uuid.NewString(),
		Kind:       "insert",
	})

	assert.NoError(t, err)
	assert.Zero(t, userRepo.updateCalls)
	assert.Zero(t, roomRepo.updateCalls)
}

func TestHandleChangeComputesUserVector(t *testing.T) {
	user := &db_models.User{
		BaseModel:           db_models.BaseModel{ID: uuid.New()},
		GenderPreference:    "Mixed",
		PreferredLocations:  []string{"Cambridge", "Boston"},
		BudgetMax:           intPtr(1500),
		LeaseDurationMonths: intPtr(12),
		RoomTypePreference:  "Shared",
	}
	userRepo := &fakeUserRepo{users: map[string]*db_models.User{user.ID.String(): user}}
	svc := newTestEmbeddingService(userRepo, &fakeRoomRepo{})

	ev := RecordChange{Collection: CollectionUsers, DocumentID: user.ID.String(), Kind: "insert"}

	require.NoError(t, svc.HandleChange(context.Background(), ev))
	require.NotNil(t, user.UserVector)
	assert.Len(t, user.UserVector.Slice(), vectorize.Dim)

	// A second delivery sees the stored vector and skips the write.
	require.NoError(t, svc.HandleChange(context.Background(), ev))
	assert.Equal(t, 1, userRepo.updateCalls)
}

package roomsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"homiehub/internal/repositories"
	"homiehub/internal/services"
)

var Module = fx.Provide(provideRoomService)

func provideRoomService(roomRepo repositories.RoomRepository, logger *zap.Logger) services.RoomServiceInterface {
	return services.NewRoomService(roomRepo, logger)
}

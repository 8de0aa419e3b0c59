package embeddingfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"homiehub/internal/infra"
	"homiehub/internal/repositories"
	"homiehub/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideEmbeddingService),
	fx.Provide(infra.NewChangeListener),
	fx.Invoke(startListener),
)

func provideEmbeddingService(
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	logger *zap.Logger,
) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(userRepo, roomRepo, logger)
}

func startListener(lc fx.Lifecycle, listener *infra.ChangeListener, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := listener.Run(ctx); err != nil {
					logger.Error("change listener stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

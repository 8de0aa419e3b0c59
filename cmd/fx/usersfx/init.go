package usersfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"homiehub/internal/repositories"
	"homiehub/internal/services"
)

var Module = fx.Provide(provideUserService)

func provideUserService(userRepo repositories.UserRepository, logger *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, logger)
}

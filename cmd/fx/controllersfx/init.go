package controllersfx

import (
	"go.uber.org/fx"

	"homiehub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewRoomsController),
	fx.Provide(controllers.NewMatchingController),
)

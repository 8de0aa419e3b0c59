package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"homiehub/internal/infra"
	"homiehub/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Provide(repositories.NewUserRepository),
	fx.Provide(repositories.NewRoomRepository),
)

func provideDB(lc fx.Lifecycle) (*gorm.DB, error) {
	db, err := infra.NewPostgresql()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ClosePostgresql(db)
		},
	})

	return db, nil
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"homiehub/cmd/fx/controllersfx"
	"homiehub/cmd/fx/dbfx"
	"homiehub/cmd/fx/embeddingfx"
	"homiehub/cmd/fx/matchingfx"
	"homiehub/cmd/fx/roomsfx"
	"homiehub/cmd/fx/usersfx"
	"homiehub/internal/api/controllers"
	"homiehub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		fx.Provide(provideLogger),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		dbfx.Module,
		usersfx.Module,
		roomsfx.Module,
		matchingfx.Module,
		embeddingfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	usersController *controllers.UsersController,
	roomsController *controllers.RoomsController,
	matchingController *controllers.MatchingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, usersController, roomsController, matchingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	usersController *controllers.UsersController,
	roomsController *controllers.RoomsController,
	matchingController *controllers.MatchingController) {

	usersGroup := r.Group("/users")
	usersGroup.POST("", usersController.CreateUser)
	usersGroup.GET("/:id", usersController.GetUserByID)

	roomsGroup := r.Group("/rooms")
	roomsGroup.POST("", roomsController.CreateRoom)
	roomsGroup.GET("/:id", roomsController.GetRoomByID)

	r.POST("/recommendation", matchingController.GetMatches)
}

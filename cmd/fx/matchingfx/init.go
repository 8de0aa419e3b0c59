package matchingfx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"homiehub/internal/repositories"
	"homiehub/internal/services"
)

// Queries slower than this are flagged in the logs, not failed.
const defaultSlowQueryMs = 500

var Module = fx.Provide(provideMatchingService)

func provideMatchingService(
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	logger *zap.Logger,
) services.MatchingServiceInterface {
	return services.NewMatchingService(userRepo, roomRepo, logger, slowQueryThreshold())
}

func slowQueryThreshold() time.Duration {
	ms := defaultSlowQueryMs
	if v := os.Getenv("SLOW_QUERY_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ms = parsed
		}
	}
	return time.Duration(ms) * time.Millisecond
}

//go:build wireinject
// +build wireinject

package di

import (
	"booker/config"
	"booker/infras/otel"
	"booker/infras/postgres"
	"booker/infras/redis"
	bookingHandler "booker/internal/handlers/booking"
	healthHandler "booker/internal/handlers/health"
	roomHandler "booker/internal/handlers/room"
	"booker/shared/cache"
	"booker/transport/http"
	"booker/transport/http/middleware"
	"booker/transport/http/router"

	bookingRepository "booker/internal/domains/booking/repository"
	bookingService "booker/internal/domains/booking/service"
	roomRepository "booker/internal/domains/room/repository"
	roomService "booker/internal/domains/room/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

//go:build wireinject
// +build wireinject

package di

import (
	"worldclock/config"
	"worldclock/infras/kafka"
	"worldclock/infras/otel"
	"worldclock/infras/postgres"
	"worldclock/infras/redis"
	"worldclock/infras/s3"
	"worldclock/shared/broadcast"
	"worldclock/shared/cache"
	"worldclock/shared/resource"
	"worldclock/shared/timezone"
	"worldclock/transport/http"
	"worldclock/transport/http/middleware"
	"worldclock/transport/http/router"

	catalogRepository "worldclock/internal/domains/catalog/repository"
	catalogService "worldclock/internal/domains/catalog/service"
	clockService "worldclock/internal/domains/clock/service"
	colleagueRepository "worldclock/internal/domains/colleague/repository"
	colleagueService "worldclock/internal/domains/colleague/service"
	converterService "worldclock/internal/domains/converter/service"
	dstRepository "worldclock/internal/domains/dst/repository"
	dstService "worldclock/internal/domains/dst/service"

	clockHandler "worldclock/internal/handlers/clock"
	colleagueHandler "worldclock/internal/handlers/colleague"
	converterHandler "worldclock/internal/handlers/converter"
	dstHandler "worldclock/internal/handlers/dst"
	timezoneHandler "worldclock/internal/handlers/timezone"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	broadcast.New,
	timezone.System,
	resource.NewFetcher,
	resource.New,
)

var dstDomain = wire.NewSet(
	dstRepository.New,
	dstService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var colleagueDomain = wire.NewSet(
	colleagueRepository.New,
	colleagueService.New,
)

var domains = wire.NewSet(
	dstDomain,
	catalogDomain,
	colleagueDomain,
	clockService.New,
	converterService.New,
	provideLoaders,
	provideClosers,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dstHandler.New,
	timezoneHandler.New,
	colleagueHandler.New,
	clockHandler.New,
	converterHandler.New,
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

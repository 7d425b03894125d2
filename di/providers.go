package di

import (
	"worldclock/infras/postgres"
	catalogService "worldclock/internal/domains/catalog/service"
	dstService "worldclock/internal/domains/dst/service"
	"worldclock/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// provideLoaders lists the resources fetched in the background at startup.
func provideLoaders(dst dstService.DST, catalog catalogService.Catalog) http.Loaders {
	return http.Loaders{dst, catalog}
}

// provideClosers lists the pools released once the server has shut down.
func provideClosers(db *postgres.Connection, client *goRedis.Client) http.Closers {
	return http.Closers{db, client}
}

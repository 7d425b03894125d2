package handler

import (
	"net/http"
	"sync"
	"worldclock/config"
	"worldclock/di"
	"worldclock/shared/logger"
)

var service = sync.OnceValue(func() http.Handler {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	return di.InitializeService()
})

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	service().ServeHTTP(w, r)
}

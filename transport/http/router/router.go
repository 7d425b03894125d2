package router

import (
	"worldclock/internal/handlers/clock"
	"worldclock/internal/handlers/colleague"
	"worldclock/internal/handlers/converter"
	"worldclock/internal/handlers/dst"
	"worldclock/internal/handlers/timezone"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	DST       dst.Handler
	Timezone  timezone.Handler
	Colleague colleague.Handler
	Clock     clock.Handler
	Converter converter.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.DST.Router(routerGroup)
		r.DomainHandlers.Timezone.Router(routerGroup)
		r.DomainHandlers.Colleague.Router(routerGroup)
		r.DomainHandlers.Clock.Router(routerGroup)
		r.DomainHandlers.Converter.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

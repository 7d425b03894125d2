package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/internal/domains/catalog/model"
	"worldclock/shared/constant"
	"worldclock/shared/resource"
)

type Locations interface {
	Load(ctx context.Context) ([]model.Location, error)
}

type repositoryImpl struct {
	cfg    *config.Config
	loader resource.Loader
	otel   otel.Otel
}

func New(cfg *config.Config, loader resource.Loader, otel otel.Otel) Locations {
	return &repositoryImpl{
		cfg:    cfg,
		loader: loader,
		otel:   otel,
	}
}

func (r *repositoryImpl) Load(ctx context.Context) ([]model.Location, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Load")
	defer scope.End()

	var locations []model.Location

	if err := r.loader.Load(ctx, r.cfg.Resource.CatalogPath, &locations); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load timezone catalog: %w", err)
	}

	return locations, nil
}

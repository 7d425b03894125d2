package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/internal/domains/dst/model"
	"worldclock/shared/constant"
	"worldclock/shared/resource"
)

type Rules interface {
	Load(ctx context.Context) (*model.RuleTable, error)
}

type repositoryImpl struct {
	cfg    *config.Config
	loader resource.Loader
	otel   otel.Otel
}

func New(cfg *config.Config, loader resource.Loader, otel otel.Otel) Rules {
	return &repositoryImpl{
		cfg:    cfg,
		loader: loader,
		otel:   otel,
	}
}

func (r *repositoryImpl) Load(ctx context.Context) (*model.RuleTable, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Load")
	defer scope.End()

	table := &model.RuleTable{}

	if err := r.loader.Load(ctx, r.cfg.Resource.RulesPath, table); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load dst rules: %w", err)
	}

	if table.TimezoneToRegion == nil {
		table.TimezoneToRegion = map[string]string{}
	}

	if table.Regions == nil {
		table.Regions = map[string]model.Rule{}
	}

	return table, nil
}

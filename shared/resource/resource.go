// Package resource fetches static documents (the DST rule table, the timezone
// catalog) from the configured source and decodes them by file extension.
package resource

//go:generate go run go.uber.org/mock/mockgen -source=./resource.go -destination=./mocks/resource_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"worldclock/config"
	"worldclock/infras/otel"
	"worldclock/infras/s3"
	"worldclock/shared"
	"worldclock/shared/cache"
	"worldclock/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	otelScopeName       = "resource"
	otelAttrPath        = "resource.path"
	otelAttrSource      = "resource.source"
	cacheKeyResource    = "resource"
	maxResponseBodySize = 4 << 20
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Fetcher returns the raw bytes of the document stored at path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Loader fetches the document at path and decodes it into value.
type Loader interface {
	Load(ctx context.Context, path string, value any) error
}

type fileFetcher struct{}

func (fileFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource file: %w", err)
	}

	return data, nil
}

type s3Fetcher struct {
	s3 s3.S3
}

func (f s3Fetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	data, err := f.s3.Download(ctx, "", path)
	if err != nil {
		return nil, fmt.Errorf("failed to download resource: %w", err)
	}

	return data, nil
}

type httpFetcher struct {
	client  *http.Client
	baseURL string
}

func (f httpFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	target, err := url.JoinPath(f.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource request: %w", err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resource: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read resource body: %w", err)
	}

	return data, nil
}

// NewFetcher picks the fetcher for RESOURCE_SOURCE. Unknown sources fall back to the local file system.
func NewFetcher(cfg *config.Config, storage s3.S3) Fetcher {
	switch cfg.Resource.Source {
	case constant.ResourceSourceS3:
		return s3Fetcher{s3: storage}
	case constant.ResourceSourceHTTP:
		return httpFetcher{
			client:  &http.Client{Timeout: time.Duration(cfg.Resource.TimeoutSec) * time.Second},
			baseURL: cfg.Resource.BaseURL,
		}
	case constant.ResourceSourceFile:
		return fileFetcher{}
	default:
		log.Warn().Str("source", cfg.Resource.Source).Msg("Unknown resource source, reading from file system")

		return fileFetcher{}
	}
}

type loaderImpl struct {
	cfg     *config.Config
	fetcher Fetcher
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(cfg *config.Config, fetcher Fetcher, cache cache.RedisCache, otel otel.Otel) Loader {
	return &loaderImpl{
		cfg:     cfg,
		fetcher: fetcher,
		cache:   cache,
		otel:    otel,
	}
}

// Load reads the raw document from the cache when enabled, otherwise from the source.
func (l *loaderImpl) Load(ctx context.Context, path string, value any) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrPath:   path,
		otelAttrSource: l.cfg.Resource.Source,
	})

	data, err := l.read(ctx, path)
	if err != nil {
		return err
	}

	return Decode(path, data, value)
}

func (l *loaderImpl) read(ctx context.Context, path string) ([]byte, error) {
	cacheKey := shared.BuildCacheKey(cacheKeyResource, l.cfg.Resource.Source, path)

	if l.cfg.Resource.CacheEnable {
		var data []byte

		err := l.cache.Get(ctx, cacheKey, &data)
		if err == nil {
			log.Debug().Str("key", cacheKey).Msg("resource served from cache")

			return data, nil
		}

		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("key", cacheKey).Msg("failed to read resource cache")
		}
	}

	data, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to fetch resource")

		return nil, err
	}

	if l.cfg.Resource.CacheEnable {
		if err := l.cache.Save(ctx, cacheKey, data, l.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache resource")
		}
	}

	return data, nil
}

// Decode unmarshals data as YAML for .yaml/.yml paths and as JSON otherwise.
func Decode(path string, data []byte, value any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, value); err != nil {
			return fmt.Errorf("failed to decode yaml resource %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, value); err != nil {
			return fmt.Errorf("failed to decode json resource %s: %w", path, err)
		}
	}

	return nil
}

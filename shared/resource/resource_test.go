package resource_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"worldclock/config"
	otelMocks "worldclock/infras/otel/mocks"
	s3Mocks "worldclock/infras/s3/mocks"
	"worldclock/shared/cache"
	cacheMocks "worldclock/shared/cache/mocks"
	"worldclock/shared/constant"
	"worldclock/shared/resource"
	"worldclock/shared/resource/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type document struct {
	Name   string   `json:"name"   yaml:"name"`
	Months []int    `json:"months" yaml:"months"`
	Tags   []string `json:"tags"   yaml:"tags"`
}

var expectedDocument = document{Name: "north", Months: []int{3, 11}, Tags: []string{"a", "b"}}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		wantErr bool
	}{
		{name: "json", path: "rules.json", data: `{"name":"north","months":[3,11],"tags":["a","b"]}`},
		{name: "yaml", path: "rules.yaml", data: "name: north\nmonths: [3, 11]\ntags:\n  - a\n  - b\n"},
		{name: "yml upper case", path: "RULES.YML", data: "name: north\nmonths: [3, 11]\ntags: [a, b]\n"},
		{name: "no extension defaults to json", path: "rules", data: `{"name":"north","months":[3,11],"tags":["a","b"]}`},
		{name: "broken json", path: "rules.json", data: `{"name":`, wantErr: true},
		{name: "broken yaml", path: "rules.yaml", data: "name: [north", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got document

			err := resource.Decode(tt.path, []byte(tt.data), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(expectedDocument, got); diff != "" {
				t.Errorf("decoded document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewFetcher_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ok":true}`), 0o600))

	cfg := &config.Config{}
	cfg.Resource.Source = constant.ResourceSourceFile

	data, err := resource.NewFetcher(cfg, nil).Fetch(t.Context(), path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))

	_, err = resource.NewFetcher(cfg, nil).Fetch(t.Context(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewFetcher_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/timezones.json" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		_, _ = w.Write([]byte(`[{"abbr":"EST"}]`))
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Resource.Source = constant.ResourceSourceHTTP
	cfg.Resource.BaseURL = server.URL + "/static"
	cfg.Resource.TimeoutSec = 5

	fetcher := resource.NewFetcher(cfg, nil)

	data, err := fetcher.Fetch(t.Context(), "timezones.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"abbr":"EST"}]`, string(data))

	_, err = fetcher.Fetch(t.Context(), "missing.json")
	assert.ErrorIs(t, err, resource.ErrUnexpectedStatus)
}

func TestNewFetcher_S3(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := s3Mocks.NewMockS3(ctrl)
	storage.EXPECT().Download(gomock.Any(), "", "rules/dst_rules.yaml").Return([]byte("regions: {}"), nil)

	cfg := &config.Config{}
	cfg.Resource.Source = constant.ResourceSourceS3

	data, err := resource.NewFetcher(cfg, storage).Fetch(t.Context(), "rules/dst_rules.yaml")
	require.NoError(t, err)
	assert.Equal(t, "regions: {}", string(data))
}

func TestLoader_Load(t *testing.T) {
	raw := []byte(`{"name":"north","months":[3,11],"tags":["a","b"]}`)

	tests := []struct {
		name        string
		cacheEnable bool
		setupMock   func(fetcher *mocks.MockFetcher, redis *cacheMocks.MockRedisCache)
		wantErr     bool
	}{
		{
			name: "cache disabled fetches from source",
			setupMock: func(fetcher *mocks.MockFetcher, _ *cacheMocks.MockRedisCache) {
				fetcher.EXPECT().Fetch(gomock.Any(), "rules.json").Return(raw, nil)
			},
		},
		{
			name:        "cache hit skips the source",
			cacheEnable: true,
			setupMock: func(_ *mocks.MockFetcher, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), "resource:file:rules.json", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]byte) = raw

						return nil
					})
			},
		},
		{
			name:        "cache miss fetches and stores",
			cacheEnable: true,
			setupMock: func(fetcher *mocks.MockFetcher, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), "resource:file:rules.json", gomock.Any()).Return(cache.Nil)
				fetcher.EXPECT().Fetch(gomock.Any(), "rules.json").Return(raw, nil)
				redis.EXPECT().Save(gomock.Any(), "resource:file:rules.json", raw, 60).Return(nil)
			},
		},
		{
			name:        "cache failures do not block loading",
			cacheEnable: true,
			setupMock: func(fetcher *mocks.MockFetcher, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
				fetcher.EXPECT().Fetch(gomock.Any(), "rules.json").Return(raw, nil)
				redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
		},
		{
			name: "source error",
			setupMock: func(fetcher *mocks.MockFetcher, _ *cacheMocks.MockRedisCache) {
				fetcher.EXPECT().Fetch(gomock.Any(), "rules.json").Return(nil, errors.New("not found"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetcher := mocks.NewMockFetcher(ctrl)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(fetcher, redis)

			cfg := &config.Config{}
			cfg.Resource.Source = constant.ResourceSourceFile
			cfg.Resource.CacheEnable = tt.cacheEnable
			cfg.Cache.TTL = 60

			loader := resource.New(cfg, fetcher, redis, otelMocks.NewOtel())

			var got document

			err := loader.Load(t.Context(), "rules.json", &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, expectedDocument, got)
		})
	}
}

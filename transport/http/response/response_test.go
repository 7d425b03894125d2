package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"worldclock/shared/constant"
	"worldclock/shared/failure"
	"worldclock/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"index": 2})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"data":{"index":2}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "failure",
			err:  failure.NotFound("colleague at index 4 not found"),
			code: http.StatusNotFound,
			body: `{"error":"colleague at index 4 not found"}`,
		},
		{
			name: "plain error",
			err:  errors.New("redis down"),
			code: http.StatusInternalServerError,
			body: `{"error":"redis down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		code  int
		body  string
	}{
		{name: "limit exceeded", write: response.WithRequestLimitExceeded, code: http.StatusTooManyRequests, body: constant.ResponseErrorRequestLimitExceeded},
		{name: "preparing shutdown", write: response.WithPreparingShutdown, code: http.StatusServiceUnavailable, body: constant.ResponseErrorPrepareShutdown},
		{name: "unhealthy", write: response.WithUnhealthy, code: http.StatusServiceUnavailable, body: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.body+`"}`, rec.Body.String())
		})
	}
}

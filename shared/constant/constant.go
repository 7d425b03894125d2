package constant

import (
	"time"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamQuery   = "q"
)

const (
	RequestParamIndex    = "index"
	RequestParamTimezone = "timezone"
	RequestParamDate     = "date"
	RequestParamOffset   = "offset"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 50
)

const (
	FieldCreatedAt = "created_at"
)

const (
	DateFormat      = time.RFC3339
	DayFormat       = "2006-01-02"
	ClockFormat     = "15:04"
	DisplayFormat   = "3:04:05 PM"
	SecondsPerHour  = 3600
	DSTShiftInHours = 1
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	ResourceSourceFile = "file"
	ResourceSourceS3   = "s3"
	ResourceSourceHTTP = "http"
)

const (
	RosterStoreRedis    = "redis"
	RosterStorePostgres = "postgres"
)

const (
	BroadcastRedis = "redis"
	BroadcastLocal = "local"
)

const (
	Asterix = "*"
	Empty   = ""
)

package shared

import (
	"math"
	"strings"
	"worldclock/shared/dto"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the page of items described by params. Non-positive page or
// limit returns items unchanged.
func Paginate[T any](items []T, params dto.QueryParams) []T {
	if params.Page <= 0 || params.Limit <= 0 {
		return items
	}

	start := (params.Page - 1) * params.Limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+params.Limit, len(items))

	return items[start:end]
}

// BuildCacheKey joins non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

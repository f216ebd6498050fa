package shared

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ShubhamGaur-277/Booking-Service/shared/cache"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	"github.com/ShubhamGaur-277/Booking-Service/shared/dto"

	"github.com/rs/zerolog/log"
)

// FilterByID builds the single-equality filter group used for primary key lookups.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
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

func BuildCacheKey(prefix string, parts ...any) string {
	key := prefix
	for _, part := range parts {
		key = fmt.Sprintf("%s:%v", key, part)
	}

	return key
}

// BuildCacheKeyWithQuery derives a cache key from the query parameters and filter so
// distinct queries never collide on one cache entry.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	rawArgs, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal filter args for cache key")
	}

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%s", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, rawArgs)
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

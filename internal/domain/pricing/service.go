package pricing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Service serves price tables with a short-lived Redis cache in front of
// Postgres. Every open property page polls priceView every 5 seconds, so
// the cache TTL is tuned to that cadence; a nil Redis client degrades to
// straight repository reads.
type Service struct {
	repo     Repository
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewService creates pricing service
func NewService(repo Repository, redisClient *redis.Client, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Second
	}
	return &Service{repo: repo, redis: redisClient, cacheTTL: cacheTTL}
}

func cacheKey(roomID uuid.UUID) string {
	return "prices:" + roomID.String()
}

// GetTable returns the room's table, from cache when fresh.
func (s *Service) GetTable(ctx context.Context, roomID uuid.UUID) (*Table, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey(roomID)).Bytes()
		if err == nil {
			var table Table
			if err := json.Unmarshal(cached, &table); err == nil {
				return &table, nil
			}
			// corrupt entry: fall through and rebuild
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("Price cache read failed")
		}
	}

	table, err := s.repo.GetTable(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(table); err == nil {
			if err := s.redis.Set(ctx, cacheKey(roomID), data, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("Price cache write failed")
			}
		}
	}

	return table, nil
}

// ReplaceBasePrices writes all twelve base prices and drops the cache.
func (s *Service) ReplaceBasePrices(ctx context.Context, roomID uuid.UUID, basePrices [12]float64) error {
	if err := s.repo.ReplaceBasePrices(ctx, roomID, basePrices); err != nil {
		return err
	}
	s.invalidate(ctx, roomID)
	return nil
}

// AddRange stores an override range in the given month bucket and drops
// the cache.
func (s *Service) AddRange(ctx context.Context, roomID uuid.UUID, monthIndex int, r *Range) error {
	if err := s.repo.AddRange(ctx, roomID, monthIndex, r); err != nil {
		return err
	}
	s.invalidate(ctx, roomID)
	return nil
}

// DeleteRange removes an override range and drops the cache.
func (s *Service) DeleteRange(ctx context.Context, roomID, rangeID uuid.UUID) error {
	if err := s.repo.DeleteRange(ctx, roomID, rangeID); err != nil {
		return err
	}
	s.invalidate(ctx, roomID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, roomID uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, cacheKey(roomID)).Err(); err != nil {
		log.Warn().Err(err).Msg("Price cache invalidation failed")
	}
}

package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/pantrycart/backend/internal/domain"
)

const (
	ingredientKeyPrefix = "pantrycart:ingredient:"
	synonymKeyPrefix    = "pantrycart:synonym:"
	ingredientIndexKey  = "pantrycart:ingredients"
)

// RedisRegistry stores canonical ingredients in redis. Each ingredient is a
// JSON value under its normalized name, synonyms are pointer keys back to
// that name, and a set holds the full index for All.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(addr, password string, db int) (*RedisRegistry, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisRegistry{client: client}, nil
}

func (r *RedisRegistry) GetByName(ctx context.Context, normalizedName string) (*domain.CanonicalIngredient, error) {
	key := normalizeKey(normalizedName)

	data, err := r.client.Get(ctx, ingredientKeyPrefix+key).Bytes()
	if err == redis.Nil {
		// Maybe it is a synonym pointing at a canonical name.
		target, serr := r.client.Get(ctx, synonymKeyPrefix+key).Result()
		if serr == redis.Nil {
			return nil, domain.ErrIngredientNotFound
		}
		if serr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, serr)
		}
		data, err = r.client.Get(ctx, ingredientKeyPrefix+target).Bytes()
		if err == redis.Nil {
			return nil, domain.ErrIngredientNotFound
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}

	var ing domain.CanonicalIngredient
	if err := json.Unmarshal(data, &ing); err != nil {
		return nil, fmt.Errorf("decode ingredient %q: %w", key, err)
	}
	return &ing, nil
}

func (r *RedisRegistry) InsertIfAbsent(ctx context.Context, ingredient *domain.CanonicalIngredient) (*domain.CanonicalIngredient, bool, error) {
	key := normalizeKey(ingredient.DisplayName)

	data, err := json.Marshal(ingredient)
	if err != nil {
		return nil, false, fmt.Errorf("encode ingredient %q: %w", key, err)
	}

	// SETNX makes the insert race-safe: only one caller wins, everyone
	// else reads the winner back.
	created, err := r.client.SetNX(ctx, ingredientKeyPrefix+key, data, 0).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	if !created {
		existing, err := r.GetByName(ctx, key)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	if err := r.client.SAdd(ctx, ingredientIndexKey, key).Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	for _, syn := range ingredient.Synonyms {
		if err := r.client.SetNX(ctx, synonymKeyPrefix+normalizeKey(syn), key, 0).Err(); err != nil {
			return nil, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
		}
	}

	stored := *ingredient
	return &stored, true, nil
}

func (r *RedisRegistry) All(ctx context.Context) ([]domain.CanonicalIngredient, error) {
	keys, err := r.client.SMembers(ctx, ingredientIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}

	out := make([]domain.CanonicalIngredient, 0, len(keys))
	for _, key := range keys {
		data, err := r.client.Get(ctx, ingredientKeyPrefix+key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
		}
		var ing domain.CanonicalIngredient
		if err := json.Unmarshal(data, &ing); err != nil {
			return nil, fmt.Errorf("decode ingredient %q: %w", key, err)
		}
		out = append(out, ing)
	}
	return out, nil
}

// Seed loads the given ingredients, skipping any that already exist.
func (r *RedisRegistry) Seed(ctx context.Context, ingredients []domain.CanonicalIngredient) error {
	for i := range ingredients {
		if _, _, err := r.InsertIfAbsent(ctx, &ingredients[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}

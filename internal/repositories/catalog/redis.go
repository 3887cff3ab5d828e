package catalog

import (
	"context"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheets/internal/redis"
)

const (
	catalogKeyPrefix = "catalog:"
	orderKeySuffix   = ":order"
	metaKeySuffix    = ":meta"
	metaEntriesField = "entries"
)

// Store reads and replaces catalogs
type Store interface {
	Repository
	Writer
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed catalog store. Each category is a hash of
// item name to YAML-encoded definition, a list keeping the authored order and
// a meta hash written on every Put, so an imported empty catalog still exists.
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func keysFor(category sheet.Category) (entriesKey, orderKey, metaKey string) {
	entriesKey = catalogKeyPrefix + string(category)
	return entriesKey, entriesKey + orderKeySuffix, entriesKey + metaKeySuffix
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	entriesKey, orderKey, metaKey := keysFor(input.Category)

	raw, err := r.client.HGetAll(ctx, entriesKey).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read catalog %s", input.Category)
	}
	if len(raw) == 0 {
		stored, err := r.client.Exists(ctx, metaKey).Result()
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read catalog meta %s", input.Category)
		}
		if stored > 0 {
			return &GetOutput{Catalog: sheet.NewCatalog(tree.NewMap())}, nil
		}
		return nil, errors.NotFoundf("catalog %s not found", input.Category).
			WithMeta("category", string(input.Category))
	}

	order, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read catalog order %s", input.Category)
	}

	entries := tree.NewMap()
	for _, name := range orderedNames(order, raw) {
		node, err := tree.Decode([]byte(raw[name]))
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to decode catalog entry %q", name).
				WithMeta("category", string(input.Category))
		}
		entries.Set(name, node)
	}

	return &GetOutput{Catalog: sheet.NewCatalog(entries)}, nil
}

// orderedNames lists names in stored order, then any hash fields the order
// list misses in sorted order
func orderedNames(order []string, raw map[string]string) []string {
	names := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, name := range order {
		if _, ok := raw[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	var rest []string
	for name := range raw {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	entries := input.Catalog.Entries()
	fields := make([]any, 0, entries.Len()*2)
	names := make([]any, 0, entries.Len())

	var encodeErr error
	entries.Each(func(name string, value tree.Node) {
		if encodeErr != nil {
			return
		}
		data, err := tree.Encode(value)
		if err != nil {
			encodeErr = errors.Wrapf(err, "failed to encode catalog entry %q", name)
			return
		}
		fields = append(fields, name, string(data))
		names = append(names, name)
	})
	if encodeErr != nil {
		return nil, encodeErr
	}

	entriesKey, orderKey, metaKey := keysFor(input.Category)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, entriesKey, orderKey, metaKey)
		pipe.HSet(ctx, metaKey, metaEntriesField, len(names))
		if len(names) > 0 {
			pipe.HSet(ctx, entriesKey, fields...)
			pipe.RPush(ctx, orderKey, names...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store catalog %s", input.Category)
	}

	slog.Info("Catalog stored", "category", input.Category, "entries", len(names))

	return &PutOutput{Entries: len(names)}, nil
}

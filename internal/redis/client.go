// Package redis wraps the go-redis client used as an optional catalog source.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	DB          int
	Password    string
	PoolSize    int
	DialTimeout time.Duration
	ReadTimeout time.Duration
	MaxRetries  int
	UseTLS      bool
}

// NewClient creates a Redis client for a single instance. go-redis connects
// lazily, so an unreachable endpoint only fails on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:        endpoint,
		DB:          opts.DB,
		Password:    opts.Password,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
		ReadTimeout: opts.ReadTimeout,
		MaxRetries:  opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface the catalog store depends on. It is
// redis.UniversalClient so a single node, a cluster or miniredis in tests all
// satisfy it.
type Client interface {
	redis.UniversalClient
}

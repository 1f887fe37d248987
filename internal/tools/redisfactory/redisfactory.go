package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Factory holds the redis connections of the suite. Only the token cache uses
// redis and it is optional: with an empty uri tokens are cached in memory.
type Factory struct {
	tokenCache *redis.Client
}

func New(uri string) (*Factory, error) {
	if uri == "" {
		return &Factory{}, nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		tokenCache: redis.NewClient(opt),
	}, nil
}

// TokenCacheClient returns nil when no redis is configured.
func (f *Factory) TokenCacheClient() *redis.Client {
	return f.tokenCache
}

func (f *Factory) Close() error {
	if f.tokenCache == nil {
		return nil
	}

	return f.tokenCache.Close()
}

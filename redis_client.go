package chunkix

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var once sync.Once
var redisClient *redis.Client

// RedisConnOptions holds the connection parameters for the process-wide
// redis client backing redis bitmap chunks.
type RedisConnOptions struct {
	DB                int
	Network           string
	Address           string
	Username          string
	Password          string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	PoolSize          int
	TLSConfig         *tls.Config
}

// GetRedisClient returns the redis client created by MakeRedisClient.
func GetRedisClient() *redis.Client {
	return redisClient
}

func getRedisClient() *redis.Client {
	return redisClient
}

// MakeRedisClient creates the process-wide redis client from the passed
// options. Only the first call has any effect.
func MakeRedisClient(options RedisConnOptions) {
	once.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			DB:           options.DB,
			Network:      options.Network,
			Addr:         options.Address,
			Username:     options.Username,
			Password:     options.Password,
			DialTimeout:  options.ConnectionTimeout,
			ReadTimeout:  options.ReadTimeout,
			WriteTimeout: options.WriteTimeout,
			PoolSize:     options.PoolSize,
			TLSConfig:    options.TLSConfig,
		})
	})
}

// ParseRedisURI parses a redis:// or rediss:// uri into RedisConnOptions.
func ParseRedisURI(uri string) (*RedisConnOptions, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("chunkix: could not parse redis uri: %v", err)
	}
	if u.Scheme == "redis" || u.Scheme == "rediss" {
		options, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("chunkix: error while parsing redis uri: %v", err)
		}
		return makeConnOptions(options), nil
	}
	return nil, fmt.Errorf("chunkix: unsupported uri scheme")
}

func makeConnOptions(options *redis.Options) *RedisConnOptions {
	return &RedisConnOptions{
		DB:                options.DB,
		Network:           options.Network,
		Address:           options.Addr,
		Username:          options.Username,
		Password:          options.Password,
		ConnectionTimeout: options.DialTimeout,
		ReadTimeout:       options.ReadTimeout,
		WriteTimeout:      options.WriteTimeout,
		PoolSize:          options.PoolSize,
		TLSConfig:         options.TLSConfig,
	}
}

package redisclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
	_defaultDialTimeout  = 5 * time.Second
)

type Redis struct {
	connAttempts int
	connTimeout  time.Duration
	dialTimeout  time.Duration

	addr     string
	password string
	db       int

	Client redis.UniversalClient
}

func New(ctx context.Context, addr, password string, db int, opts ...Option) (*Redis, error) {
	r := &Redis{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		dialTimeout:  _defaultDialTimeout,
		addr:         addr,
		password:     password,
		db:           db,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.Client = redis.NewClient(&redis.Options{
		Addr:        r.addr,
		Password:    r.password,
		DB:          r.db,
		DialTimeout: r.dialTimeout,
	})

	var err error
	for r.connAttempts > 0 {
		err = r.Client.Ping(ctx).Err()
		if err == nil {
			break
		}

		log.Printf("Redis is trying to connect, attempts left: %d", r.connAttempts)

		time.Sleep(r.connTimeout)

		r.connAttempts--
	}

	if err != nil {
		_ = r.Client.Close()

		return nil, fmt.Errorf("Redis - New - connAttempts == 0: %w", err)
	}

	return r, nil
}

func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}

	return nil
}

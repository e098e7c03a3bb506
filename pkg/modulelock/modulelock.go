package modulelock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"countervalidator/pkg/logger"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "vm_lock_"

	defaultTTL          = 10 * time.Minute
	defaultPollInterval = time.Second
)

// ErrNoModules is returned by Acquire when no module URL is configured.
var ErrNoModules = errors.New("no validation modules configured")

// Options configures a redis-backed Locker.
type Options struct {
	// URLs lists the modules in preference order.
	URLs []string
	// TTL is how long a lock lives without refresh. Leases refresh it every TTL/2.
	TTL time.Duration
	// PollInterval is the wait between rounds when every module is locked.
	PollInterval time.Duration
}

type locker struct {
	client  redis.UniversalClient
	locks   *redislock.Client
	options Options
}

// New returns a Locker keeping its locks in redis.
func New(client redis.UniversalClient, options Options) Locker {
	if options.TTL <= 0 {
		options.TTL = defaultTTL
	}
	if options.PollInterval <= 0 {
		options.PollInterval = defaultPollInterval
	}

	return &locker{
		client:  client,
		locks:   redislock.New(client),
		options: options,
	}
}

// Key returns the redis key guarding the module at url.
func Key(url string) string { return keyPrefix + url }

func (l *locker) Acquire(ctx context.Context) (Lease, error) {
	if len(l.options.URLs) == 0 {
		return nil, ErrNoModules
	}

	for {
		for _, url := range l.options.URLs {
			lock, err := l.locks.Obtain(ctx, Key(url), l.options.TTL, nil)
			if errors.Is(err, redislock.ErrNotObtained) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("could not obtain lock for %s: %w", url, err)
			}
			logger.Debug(ctx, "Obtained validation module lock", zap.String("module", url))

			return newLease(url, lock, l.options.TTL), nil
		}

		timer := time.NewTimer(l.options.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, fmt.Errorf("no validation module freed up: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

func (l *locker) Locked(ctx context.Context, url string) (bool, error) {
	n, err := l.client.Exists(ctx, Key(url)).Result()
	if err != nil {
		return false, fmt.Errorf("could not check lock for %s: %w", url, err)
	}

	return n > 0, nil
}

type lease struct {
	url  string
	lock *redislock.Lock

	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

func newLease(url string, lock *redislock.Lock, ttl time.Duration) *lease {
	ctx, cancel := context.WithCancel(context.Background())
	l := &lease{url: url, lock: lock, cancel: cancel, done: make(chan struct{})}
	go l.refresh(ctx, ttl)

	return l
}

func (l *lease) URL() string { return l.url }

// refresh keeps the lock alive until the lease is released.
func (l *lease) refresh(ctx context.Context, ttl time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.lock.Refresh(ctx, ttl, nil); err != nil {
				if ctx.Err() == nil {
					logger.Warn(ctx, "Could not refresh validation module lock",
						zap.String("module", l.url), zap.Error(err))
				}

				return
			}
		}
	}
}

func (l *lease) Release(ctx context.Context) error {
	var err error
	l.once.Do(func() {
		l.cancel()
		<-l.done
		if rErr := l.lock.Release(ctx); rErr != nil && !errors.Is(rErr, redislock.ErrLockNotHeld) {
			err = fmt.Errorf("could not release lock for %s: %w", l.url, rErr)
		}
	})

	return err
}

package tokenstore

import (
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryBackend keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between replicas.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewMemoryBackend creates an empty backend. Call Start to run the janitor.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (b *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	entry, ok := b.entries[key]
	b.mu.RUnlock()

	if !ok || entry.expired(b.now()) {
		return "", ErrMiss
	}

	return entry.value, nil
}

func (b *MemoryBackend) Set(_ context.Context, key, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = b.now().Add(ttl)
	}

	b.mu.Lock()
	b.entries[key] = entry
	b.mu.Unlock()

	return nil
}

func (b *MemoryBackend) Del(_ context.Context, keys ...string) error {
	b.mu.Lock()
	for _, key := range keys {
		delete(b.entries, key)
	}
	b.mu.Unlock()

	return nil
}

// Len returns the number of live entries.
func (b *MemoryBackend) Len() int {
	now := b.now()

	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, entry := range b.entries {
		if !entry.expired(now) {
			n++
		}
	}

	return n
}

// Start runs the expiry janitor until Stop is called.
func (b *MemoryBackend) Start(interval time.Duration) {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}

	go func() {
		defer close(b.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-b.stop:
				return
			case <-ticker.C:
				b.evictExpired()
			}
		}
	}()
}

// Stop ends the janitor and waits for it to exit.
func (b *MemoryBackend) Stop(ctx context.Context) error {
	b.stopOnce.Do(func() { close(b.stop) })

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *MemoryBackend) evictExpired() {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	for key, entry := range b.entries {
		if entry.expired(now) {
			delete(b.entries, key)
		}
	}
}

// Package locker serialises work per key, typically per user.
package locker

import (
	"context"
	"errors"
	"sync"

	errorvalues "github.com/limbo/calai/internal/error_values"
)

// Locker hands out exclusive ownership of a key. Lock blocks until the key is free
// or ctx is done. The returned release func is safe to call more than once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// KeyedMutex is an in-process Locker. Entries are dropped once nobody waits on them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*keyLock),
	}
}

func (km *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	km.mu.Lock()
	l, ok := km.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		km.locks[key] = l
	}
	l.refs++
	km.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-l.ch
				km.unref(key, l)
			})
		}, nil
	case <-ctx.Done():
		km.unref(key, l)
		return nil, errors.Join(errorvalues.ErrLockNotAcquired, ctx.Err())
	}
}

func (km *KeyedMutex) unref(key string, l *keyLock) {
	km.mu.Lock()
	defer km.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(km.locks, key)
	}
}

// Len reports how many keys are currently held or awaited.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.locks)
}

package lock

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/sirupsen/logrus"
)

// Registry hands out one mutex per locker pointer. Entries are dropped once
// the locker is garbage collected.
type Registry struct {
	locks sync.Map
	size  atomic.Int64
	log   logrus.FieldLogger
}

type Option func(r *Registry)

// WithLogger sets the logger used for debug traces
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by DoubleChecked
func Default() *Registry {
	return defaultRegistry
}

// Len reports how many lockers currently own a mutex
func (r *Registry) Len() int {
	return int(r.size.Load())
}

func (r *Registry) forget(key any) {
	if _, loaded := r.locks.LoadAndDelete(key); loaded {
		r.size.Add(-1)
	}
}

// lockerFor returns the lock guarding locker. A locker that is itself a
// sync.Locker guards itself.
func lockerFor[T any](r *Registry, locker *T) sync.Locker {
	if l, ok := any(locker).(sync.Locker); ok {
		return l
	}

	key := any(weak.Make(locker))
	if m, ok := r.locks.Load(key); ok {
		return m.(*sync.Mutex)
	}

	m, loaded := r.locks.LoadOrStore(key, &sync.Mutex{})
	if !loaded {
		r.size.Add(1)
		runtime.AddCleanup(locker, r.forget, key)
	}
	return m.(*sync.Mutex)
}

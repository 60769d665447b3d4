package workspace

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/kv"
	"github.com/artem13815/after42/pkg/session"
)

// Registry hands out one workspace per device, creating it on first use.
// Idle workspaces can be evicted; their sessions stay in the key-value
// store and are restored on the next access.
type Registry struct {
	mu      sync.Mutex
	store   kv.Store
	auth    auth.Authenticator
	catalog Catalog
	opts    []session.Option
	items   map[string]*entry
	now     func() time.Time
}

type entry struct {
	w        *Workspace
	lastSeen time.Time
}

func NewRegistry(store kv.Store, authenticator auth.Authenticator, catalog Catalog, opts ...session.Option) *Registry {
	return &Registry{
		store:   store,
		auth:    authenticator,
		catalog: catalog,
		opts:    opts,
		items:   make(map[string]*entry),
		now:     time.Now,
	}
}

// Get returns the device's workspace. A new workspace restores whatever
// session the device persisted earlier, so devices survive restarts.
// Restoring happens outside the registry lock; when two requests race on
// the same new device, the first one stored wins.
func (r *Registry) Get(ctx context.Context, deviceID string) (*Workspace, error) {
	if w, ok := r.cached(deviceID); ok {
		return w, nil
	}

	sess := session.New(kv.Prefixed(r.store, kv.DeviceNamespace(deviceID)), r.auth, r.opts...)
	w := New(sess, r.catalog)
	if err := w.Restore(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.items[deviceID]; ok {
		e.lastSeen = r.now()
		return e.w, nil
	}
	r.items[deviceID] = &entry{w: w, lastSeen: r.now()}
	return w, nil
}

func (r *Registry) cached(deviceID string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[deviceID]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.w, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// EvictIdle drops the workspaces not accessed since cutoff and returns how
// many were dropped. An evicted device loses its in-memory navigation only.
func (r *Registry) EvictIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.items {
		if e.lastSeen.Before(cutoff) {
			delete(r.items, id)
			n++
		}
	}
	return n
}

// Sweep evicts workspaces idle for longer than idle, every interval, until
// ctx ends. A non-positive idle disables eviction.
func (r *Registry) Sweep(ctx context.Context, interval, idle time.Duration) {
	if idle <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.EvictIdle(r.now().Add(-idle)); n > 0 {
				log.Printf("workspace: evicted %d idle devices", n)
			}
		}
	}
}

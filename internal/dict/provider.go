// internal/dict/provider.go
//
// Provider keeps one immutable Dictionary snapshot per registered name.
//
// Responsibilities:
//   - Map dictionary names (e.g. a language) to a source path; an empty path
//     means the embedded default list.
//   - Load a source lazily on first use; concurrent first uses share a
//     single load.
//   - Publish loaded dictionaries through an atomic pointer, so a search that
//     already holds a snapshot keeps using it while Reload swaps in a new one.
//
// A failed load never replaces the current snapshot.

package dict

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrUnknown is returned for names that were never registered.
var ErrUnknown = errors.New("dict: unknown dictionary")

type entry struct {
	path string
	snap atomic.Pointer[Dictionary]
}

// Provider hands out shared, read-only dictionaries by name.
type Provider struct {
	mu      sync.RWMutex // guards entries
	entries map[string]*entry
	loads   singleflight.Group
}

// NewProvider returns a Provider with no registered dictionaries.
func NewProvider() *Provider {
	return &Provider{entries: make(map[string]*entry)}
}

// Register binds name to a source path. Registering an existing name
// changes its path; the current snapshot stays until the next Reload.
func (p *Provider) Register(name, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[name]; ok {
		e.path = path
		return
	}
	p.entries[name] = &entry{path: path}
}

// Names lists the registered dictionary names in sorted order.
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Sorted(maps.Keys(p.entries))
}

// Get returns the current snapshot for name, loading it on first use.
func (p *Provider) Get(name string) (*Dictionary, error) {
	e, path, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	if d := e.snap.Load(); d != nil {
		return d, nil
	}
	v, err, _ := p.loads.Do(name, func() (any, error) {
		if d := e.snap.Load(); d != nil {
			return d, nil
		}
		d, err := open(path)
		if err != nil {
			return nil, err
		}
		e.snap.Store(d)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dictionary), nil
}

// Reload reads the source for name again and swaps the new dictionary in.
func (p *Provider) Reload(name string) (*Dictionary, error) {
	e, path, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	d, err := open(path)
	if err != nil {
		log.Warn().Err(err).Str("dictionary", name).Msg("reload failed, keeping current snapshot")
		return nil, err
	}
	e.snap.Store(d)
	return d, nil
}

// Set publishes d under name, registering the name if needed.
func (p *Provider) Set(name string, d *Dictionary) {
	p.mu.Lock()
	e, ok := p.entries[name]
	if !ok {
		e = &entry{}
		p.entries[name] = e
	}
	p.mu.Unlock()
	e.snap.Store(d)
}

func (p *Provider) lookup(name string) (*entry, string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[name]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return e, e.path, nil
}

func open(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

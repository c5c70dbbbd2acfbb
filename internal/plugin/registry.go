package plugin

import (
	"sync"

	"github.com/fystack/caaj-indexer/pkg/caaj"
)

// Registry dispatches a transaction to the first plugin that can handle it.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
}

func NewRegistry(plugins ...Plugin) *Registry {
	return &Registry{plugins: plugins}
}

func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins = append(r.plugins, p)
}

func (r *Registry) Find(tx Transaction) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plugins {
		if p.CanHandle(tx) {
			return p, true
		}
	}
	return nil, false
}

// GetCaajs journals tx with the matching plugin and reports that plugin's
// name. handledBy is empty when no registered plugin accepts the transaction.
func (r *Registry) GetCaajs(address string, tx Transaction, table TokenTable) (entries []caaj.Journal, handledBy string, err error) {
	p, ok := r.Find(tx)
	if !ok {
		return nil, "", nil
	}
	entries, err = p.GetCaajs(address, tx, table)
	return entries, p.Name(), err
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.plugins))
	for _, p := range r.plugins {
		names = append(names, p.Name())
	}
	return names
}

package clients

import (
	"fmt"
	"sync"
)

// Registry holds all registered clients in registration order
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Client
	order   []string
}

var globalRegistry = NewRegistry()

// NewRegistry creates a new client registry
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Register adds a client to the registry.
// Registering an ID twice replaces the client but keeps its position.
func (r *Registry) Register(client Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[client.ID()]; !exists {
		r.order = append(r.order, client.ID())
	}
	r.clients[client.ID()] = client
}

// Get retrieves a client by ID
func (r *Registry) Get(id string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, fmt.Errorf("unknown client: %s", id)
	}
	return client, nil
}

// GetAll returns all registered clients in registration order
func (r *Registry) GetAll() []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Client, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.clients[id])
	}
	return all
}

// Global returns the global registry
func Global() *Registry {
	return globalRegistry
}

// Register registers a client in the global registry
func Register(client Client) {
	globalRegistry.Register(client)
}

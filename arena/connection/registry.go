package connection

import (
	"sync"

	"go.uber.org/zap"

	"arenaserver/models"
)

// Registry tracks every live connection for process-wide broadcasts (online
// count, room list pushes). It is inserted into on upgrade and removed from
// on close, from many connection handlers at once.
type Registry struct {
	mu      sync.RWMutex
	clients map[*models.Client]bool
	logger  *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		clients: make(map[*models.Client]bool),
		logger:  logger,
	}
}

func (reg *Registry) Add(c *models.Client) {
	reg.mu.Lock()
	reg.clients[c] = true
	count := len(reg.clients)
	reg.mu.Unlock()
	reg.logger.Info("client connected", zap.String("clientID", c.ID), zap.Int("online", count))
}

func (reg *Registry) Remove(c *models.Client) {
	reg.mu.Lock()
	delete(reg.clients, c)
	count := len(reg.clients)
	reg.mu.Unlock()
	reg.logger.Info("client disconnected", zap.String("clientID", c.ID), zap.Int("online", count))
}

func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.clients)
}

// Snapshot copies the current client set so broadcasts iterate without
// holding the lock while writing to sockets.
func (reg *Registry) Snapshot() []*models.Client {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	clients := make([]*models.Client, 0, len(reg.clients))
	for c := range reg.clients {
		clients = append(clients, c)
	}
	return clients
}

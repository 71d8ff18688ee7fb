// Package lifecycle owns every submission state transition and validation
// decision. The RPC surface and the event consumer are thin adapters; both
// route through the manager, which is the only component allowed to mutate
// submission state.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/ulms/assignment-service/internal/platform/id"
	"github.com/ulms/assignment-service/internal/services/assignment/roster"
	"github.com/ulms/assignment-service/internal/services/assignment/storage"
)

// Manager orchestrates the submission lifecycle over injected, already
// connected dependencies.
type Manager struct {
	store  storage.Store
	roster roster.Resolver
	clock  func() time.Time
	newID  func() (string, error)
}

// NewManager wires a lifecycle manager. Dependencies must be ready; nil
// values fail here rather than on first use.
func NewManager(store storage.Store, resolver roster.Resolver) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("roster resolver is required")
	}
	return &Manager{
		store:  store,
		roster: resolver,
		clock:  func() time.Time { return time.Now().UTC() },
		newID:  id.NewID,
	}, nil
}

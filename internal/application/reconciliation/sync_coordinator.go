package reconciliation

import "sync"

// SyncKind identifies a class of background sync run
type SyncKind string

const (
	SyncKindPurchase SyncKind = "purchase"
	SyncKindEmployee SyncKind = "employee"
)

// SyncCoordinator serializes sync runs per kind within the process, so a
// manual trigger racing a scheduled trigger cannot start two overlapping
// runs of the same kind. It is constructed once and injected; tests build
// their own instances.
type SyncCoordinator struct {
	mu      sync.Mutex
	running map[SyncKind]bool
}

// NewSyncCoordinator creates a SyncCoordinator
func NewSyncCoordinator() *SyncCoordinator {
	return &SyncCoordinator{running: make(map[SyncKind]bool)}
}

// TryAcquire attempts to claim the given kind. It returns false when a run
// of that kind is already in flight.
func (c *SyncCoordinator) TryAcquire(kind SyncKind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running[kind] {
		return false
	}
	c.running[kind] = true
	return true
}

// Release frees the given kind for the next run
func (c *SyncCoordinator) Release(kind SyncKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.running, kind)
}

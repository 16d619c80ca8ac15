package server

import (
	"sync"

	"github.com/nigeshu/YoutubeSangam/model"
)

// SnapshotHolder keeps the currently loaded channel snapshot. Reads always
// see a complete snapshot; a new fetch replaces it wholesale, last write
// wins. A failed fetch never touches the held snapshot.
type SnapshotHolder struct {
	mu       sync.RWMutex
	snapshot *model.ChannelSnapshot
}

// NewSnapshotHolder creates an empty holder.
func NewSnapshotHolder() *SnapshotHolder {
	return &SnapshotHolder{}
}

// Get returns the current snapshot, or nil when no channel has been loaded.
func (h *SnapshotHolder) Get() *model.ChannelSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}

// Set replaces the current snapshot.
func (h *SnapshotHolder) Set(snapshot *model.ChannelSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot = snapshot
}

package engine

import "github.com/poiesic/textsearch/core"

// Monitor provides hooks to observe a search as it runs.
// Implement this interface to track per-file outcomes and overall progress.
type Monitor interface {
	Start(total int)
	FileMatched(target core.FileTarget)
	FileNotMatched(target core.FileTarget)
	FileFailed(target core.FileTarget, reason error)
	Finish(result *core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int)                           {}
func (n *noopMonitor) FileMatched(_ core.FileTarget)         {}
func (n *noopMonitor) FileNotMatched(_ core.FileTarget)      {}
func (n *noopMonitor) FileFailed(_ core.FileTarget, _ error) {}
func (n *noopMonitor) Finish(_ *core.SearchResult)           {}

package navigation

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Paginator is a stateful cursor over an immutable embed sequence. Stepping
// past either end is a silent no-op; callers render the availability flags as
// disabled buttons. Interaction events arrive on separate goroutines, so the
// cursor is guarded by a mutex.
type Paginator struct {
	mu    sync.Mutex
	pages []*discordgo.MessageEmbed
	index int
}

// NewPaginator wraps a non-empty page sequence. Returns nil for an empty one;
// callers never register navigation for zero pages.
func NewPaginator(pages []*discordgo.MessageEmbed) *Paginator {
	if len(pages) == 0 {
		return nil
	}
	return &Paginator{pages: pages}
}

// Current returns the page under the cursor.
func (p *Paginator) Current() *discordgo.MessageEmbed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pages[p.index]
}

// Index returns the cursor position.
func (p *Paginator) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Len returns the number of pages.
func (p *Paginator) Len() int {
	return len(p.pages)
}

// Advance moves forward one page. Reports whether the cursor moved.
func (p *Paginator) Advance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index >= len(p.pages)-1 {
		return false
	}
	p.index++
	return true
}

// Retreat moves back one page. Reports whether the cursor moved.
func (p *Paginator) Retreat() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index <= 0 {
		return false
	}
	p.index--
	return true
}

// CanAdvance reports whether a forward step is available.
func (p *Paginator) CanAdvance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index < len(p.pages)-1
}

// CanRetreat reports whether a backward step is available.
func (p *Paginator) CanRetreat() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index > 0
}

// NavigationManager tracks active paginators keyed by Discord message ID.
// Entries live for the lifetime of the process; interactive widgets never
// time out.
type NavigationManager struct {
	mu       sync.RWMutex
	sessions map[string]*Paginator
}

var (
	manager     *NavigationManager
	managerOnce sync.Once
)

// GetNavigationManager returns the process-wide navigation manager.
func GetNavigationManager() *NavigationManager {
	managerOnce.Do(func() {
		manager = &NavigationManager{
			sessions: make(map[string]*Paginator),
		}
	})
	return manager
}

// Register associates a paginator with a sent message.
func (nm *NavigationManager) Register(messageID string, paginator *Paginator) {
	if paginator == nil {
		return
	}
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.sessions[messageID] = paginator
}

// Get looks up the paginator for a message, if one is registered.
func (nm *NavigationManager) Get(messageID string) (*Paginator, bool) {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	paginator, ok := nm.sessions[messageID]
	return paginator, ok
}

package navigation_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/lostark/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePages(n int) []*discordgo.MessageEmbed {
	pages := make([]*discordgo.MessageEmbed, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, &discordgo.MessageEmbed{Title: fmt.Sprintf("page %d", i)})
	}
	return pages
}

func TestNewPaginatorEmpty(t *testing.T) {
	assert.Nil(t, navigation.NewPaginator(nil))
	assert.Nil(t, navigation.NewPaginator([]*discordgo.MessageEmbed{}))
}

func TestPaginatorSinglePage(t *testing.T) {
	p := navigation.NewPaginator(makePages(1))
	require.NotNil(t, p)

	assert.Equal(t, 1, p.Len())
	assert.False(t, p.CanAdvance())
	assert.False(t, p.CanRetreat())
	assert.False(t, p.Advance())
	assert.False(t, p.Retreat())
	assert.Equal(t, 0, p.Index())
}

func TestPaginatorBounds(t *testing.T) {
	p := navigation.NewPaginator(makePages(3))
	require.NotNil(t, p)

	// Walk to the end; stepping past it is a silent no-op.
	assert.True(t, p.Advance())
	assert.True(t, p.Advance())
	assert.False(t, p.Advance())
	assert.Equal(t, 2, p.Index())
	assert.False(t, p.CanAdvance())
	assert.True(t, p.CanRetreat())

	// And back to the start.
	assert.True(t, p.Retreat())
	assert.True(t, p.Retreat())
	assert.False(t, p.Retreat())
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, "page 0", p.Current().Title)
}

func TestPaginatorBalancedWalkReturnsToStart(t *testing.T) {
	p := navigation.NewPaginator(makePages(5))
	require.NotNil(t, p)

	steps := []bool{true, true, false, true, false, false}
	for _, forward := range steps {
		if forward {
			p.Advance()
		} else {
			p.Retreat()
		}
	}
	assert.Equal(t, 0, p.Index())
}

func TestPaginatorConcurrentNavigationStaysInBounds(t *testing.T) {
	p := navigation.NewPaginator(makePages(5))
	require.NotNil(t, p)

	// Two users hammering prev/next on the same message at once; each click
	// arrives on its own goroutine.
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		forward := g%2 == 0
		go func(forward bool) {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				if forward {
					p.Advance()
				} else {
					p.Retreat()
				}
				idx := p.Index()
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, p.Len())
				assert.NotNil(t, p.Current())
			}
		}(forward)
	}
	wg.Wait()

	idx := p.Index()
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, p.Len())
}

func TestNavigationManagerRegisterAndGet(t *testing.T) {
	nm := navigation.GetNavigationManager()

	p := navigation.NewPaginator(makePages(2))
	nm.Register("msg-123", p)

	got, ok := nm.Get("msg-123")
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = nm.Get("msg-unknown")
	assert.False(t, ok)
}

func TestNavigationManagerIgnoresNilPaginator(t *testing.T) {
	nm := navigation.GetNavigationManager()

	nm.Register("msg-nil", nil)
	_, ok := nm.Get("msg-nil")
	assert.False(t, ok)
}

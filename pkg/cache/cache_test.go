package cache

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string, []byte], clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, []byte], _ *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string, []byte], clock *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				clock.advance(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, []byte], _ *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))
				if _, ok := c.Get("b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected a=1, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string, []byte], clock *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				clock.advance(time.Millisecond * 30)
				c.Set("a", []byte("2"))
				clock.advance(time.Millisecond * 30)
				if v, ok := c.Get("a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, []byte], _ *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
			},
		},
		{
			name:     "zero capacity stores nothing",
			capacity: 0,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, []byte], _ *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected nothing to be cached")
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string, []byte], clock *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				clock.advance(time.Millisecond * 60)
				c.Set("b", []byte("2"))

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected only fresh key to remain, got size %d", c.Size())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[string, []byte](tt.capacity, tt.ttl)
			c.now = clock.now
			tt.actions(c, clock, t)
		})
	}
}

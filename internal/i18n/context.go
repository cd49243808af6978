package i18n

import "sync"

// Context carries the ambient language tag. Each widget subscribes when it is
// built and unsubscribes on teardown; there is no process-wide watcher.
type Context struct {
	mu     sync.Mutex
	tag    string
	subs   map[uint64]func(tag string)
	nextID uint64
}

// NewContext creates a context holding tag
func NewContext(tag string) *Context {
	return &Context{
		tag:  tag,
		subs: make(map[uint64]func(string)),
	}
}

// Tag returns the current language tag
func (c *Context) Tag() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tag
}

// SetTag updates the tag and notifies subscribers when it changed.
// Subscribers run on the caller's goroutine.
func (c *Context) SetTag(tag string) {
	c.mu.Lock()
	if tag == c.tag {
		c.mu.Unlock()
		return
	}
	c.tag = tag
	fns := make([]func(string), 0, len(c.subs))
	for id := uint64(1); id <= c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(tag)
	}
}

// Subscribe registers fn for tag changes and returns its unsubscribe function
func (c *Context) Subscribe(fn func(tag string)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Subscribers reports how many subscriptions are live
func (c *Context) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

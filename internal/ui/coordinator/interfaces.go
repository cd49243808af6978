package coordinator

import (
	"dropdown/internal/domain"
	"dropdown/internal/ui/state"
)

// Publisher receives change and list notifications
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Renderer consumes a snapshot after every transition
type Renderer interface {
	Render(snap state.Snapshot)
	ScrollIntoView(index int)
}

// Scheduler runs fn after the current update cycle has completed
type Scheduler interface {
	Defer(fn func())
}

// LanguageContext provides the ambient language tag
type LanguageContext interface {
	Tag() string
	Subscribe(fn func(tag string)) (unsubscribe func())
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(event domain.DomainEvent)

func (f PublisherFunc) Publish(event domain.DomainEvent) { f(event) }

// ImmediateScheduler runs continuations inline. Hosts without an event loop
// use it; it gives up the next-tick ordering.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Defer(fn func()) { fn() }

type nopPublisher struct{}

func (nopPublisher) Publish(domain.DomainEvent) {}

type nopRenderer struct{}

func (nopRenderer) Render(state.Snapshot) {}
func (nopRenderer) ScrollIntoView(int)    {}

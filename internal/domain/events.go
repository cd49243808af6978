package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventChange          EventType = "Change"
	EventListChanged     EventType = "ListChanged"
	EventLanguageChanged EventType = "LanguageChanged"
	EventSourceChanged   EventType = "SourceChanged"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ChangeEvent is emitted exactly once per committed selection.
// Value carries the choice text and ID carries the choice value.
type ChangeEvent struct {
	Value string
	ID    string
}

func (e ChangeEvent) Type() EventType { return EventChange }

// ListChangedEvent is emitted after the choice list was mutated
type ListChangedEvent struct {
	Length int
}

func (e ListChangedEvent) Type() EventType { return EventListChanged }

// LanguageChangedEvent is emitted when the ambient language tag changes
type LanguageChangedEvent struct {
	Tag string
}

func (e LanguageChangedEvent) Type() EventType { return EventLanguageChanged }

// SourceChangedEvent is emitted when a watched file changed on disk
type SourceChangedEvent struct {
	Path string
}

func (e SourceChangedEvent) Type() EventType { return EventSourceChanged }

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Language string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

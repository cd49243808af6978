package ui

import (
	"dropdown/internal/config"
	"dropdown/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// SourceChangedMsg reports that the choices file changed on disk
type SourceChangedMsg struct {
	Path string
}

// ConfigChangedMsg carries a configuration reloaded from disk
type ConfigChangedMsg struct {
	Config *config.Config
}

// LanguageMsg asks the model to switch language
type LanguageMsg struct {
	Tag string
}

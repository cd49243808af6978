// Package ui hosts the dropdown widget in a bubbletea program.
package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"dropdown/internal/config"
	"dropdown/internal/domain"
	"dropdown/internal/eventbus"
	"dropdown/internal/i18n"
	"dropdown/internal/logic"
	"dropdown/internal/ui/commands"
	"dropdown/internal/ui/coordinator"
	"dropdown/internal/ui/input"
	inputtypes "dropdown/internal/ui/input/types"
	"dropdown/internal/ui/views"
)

// Widget origin inside the Main style padding
const (
	originX = 2
	originY = 1
)

// ChoiceLoader reads the current choices from their source
type ChoiceLoader func() ([]domain.Choice, error)

// Options configures the host model
type Options struct {
	Config   *config.Config
	Bus      eventbus.EventBus
	Language *i18n.Context
	Logger   *log.Logger
	// Loader rereads the choices source on reload; nil follows Config, so a
	// config change can point the widget at another source
	Loader ChoiceLoader
	// Choices seeds the widget; when nil the loader is used
	Choices []domain.Choice
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	lang   *i18n.Context
	logger *log.Logger
	loader ChoiceLoader

	dropdown     *coordinator.Dropdown
	renderer     *views.Renderer
	queue        *commands.Queue
	inputHandler *input.Handler

	width    int
	height   int
	help     help.Model
	showHelp bool

	// loader is rebuilt from the config on every config change
	followConfig bool

	// browsing is set while an arrow key moves the selection of a closed
	// list; those commits do not end an exit-on-select session
	browsing bool
	// set by the publisher when a commit happens during the current update
	committed *domain.ChangeEvent
	explicit  bool
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	lang := opts.Language
	if lang == nil {
		lang = i18n.NewContext(cfg.Language)
	}

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		lang:         lang,
		logger:       logger.WithPrefix("ui"),
		loader:       opts.Loader,
		renderer:     views.NewRenderer(cfg.UI.Width, cfg.UI.MaxVisible),
		queue:        commands.NewQueue(),
		inputHandler: input.New(),
		help:         help.New(),
	}
	if m.loader == nil {
		m.followConfig = true
		m.loader = ConfigLoader(cfg)
	}

	choices := opts.Choices
	if choices == nil {
		loaded, err := m.loader()
		if err != nil {
			m.logger.Error("failed to load choices", "err", err)
		}
		choices = loaded
	}

	m.dropdown = coordinator.New(coordinator.Options{
		Label:     cfg.Label,
		Choices:   choices,
		Language:  lang,
		Publisher: coordinator.PublisherFunc(m.publish),
		Renderer:  m.renderer,
		Scheduler: m.queue,
		Logger:    logger,
	})
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.queue.Cmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Continuations from the previous update run before anything else,
	// whether or not their FlushMsg arrived first
	m.queue.Flush()
	m.committed = nil
	m.explicit = false

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case commands.FlushMsg:
		// already flushed

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeWidget()

	case tea.KeyMsg:
		keys, action := m.inputHandler.HandleKey(msg)
		if action != nil {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		for _, k := range keys {
			m.browsing = !m.dropdown.State().Open && (k.Code == inputtypes.KeyUp || k.Code == inputtypes.KeyDown)
			if !m.dropdown.HandleKey(k) {
				m.logger.Debug("key not consumed", "key", k)
			}
			m.browsing = false
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case SourceChangedMsg:
		m.logger.Info("choices source changed", "path", msg.Path)
		m.reload()

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)

	case LanguageMsg:
		m.setLanguage(msg.Tag)

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.logger.Error(e.Message, "err", e.Err)
		}
	}

	if m.explicit && m.config.ExitOnSelect {
		return m, tea.Quit
	}

	cmds = append(cmds, m.queue.Cmd())
	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	m.help.ShowAll = m.showHelp
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.View(),
		m.renderer.Styles().Help.Render(m.help.View(m.inputHandler.Keys())),
	)
	return m.renderer.Styles().Main.Render(body)
}

// Value returns the selected choice text
func (m *Model) Value() (string, bool) {
	return m.dropdown.Value()
}

// Selected returns the selected choice
func (m *Model) Selected() (domain.Choice, bool) {
	return m.dropdown.Selected()
}

// Dropdown exposes the hosted widget
func (m *Model) Dropdown() *coordinator.Dropdown {
	return m.dropdown
}

// Close tears the widget down
func (m *Model) Close() {
	m.dropdown.Close()
}

func (m *Model) publish(event domain.DomainEvent) {
	if e, ok := event.(domain.ChangeEvent); ok {
		m.committed = &e
		m.explicit = m.explicit || !m.browsing
		m.logger.Info("selection changed", "value", e.Value, "id", e.ID)
	}
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit
	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
	case inputtypes.CycleLanguageAction:
		m.cycleLanguage()
	case inputtypes.ReloadAction:
		m.reload()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	hit := m.renderer.HitTest(msg.X-originX, msg.Y-originY)
	switch hit.Kind {
	case views.HitTrigger:
		m.dropdown.ClickTrigger()
	case views.HitOption:
		_ = m.dropdown.SelectChoice(hit.ID)
	case views.HitOutside:
		m.dropdown.OutsideInteraction()
	}
}

func (m *Model) reload() {
	choices, err := m.loader()
	if err != nil {
		// Keep the current list when the source cannot be read
		m.logger.Error("failed to reload choices", "err", err)
		return
	}
	m.dropdown.Rescan(choices)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	prev := m.config
	m.config = cfg
	m.renderer.SetMaxVisible(cfg.UI.MaxVisible)
	m.resizeWidget()
	m.dropdown.SetLabel(cfg.Label)
	if cfg.Language != "" {
		m.setLanguage(cfg.Language)
	}
	if !m.followConfig {
		return
	}

	m.loader = ConfigLoader(cfg)
	switch {
	case cfg.ChoicesFile != prev.ChoicesFile:
		m.logger.Info("choices source moved", "from", prev.ChoicesFile, "to", cfg.ChoicesFile)
		m.reload()
	case cfg.ChoicesFile == "" && !slices.Equal(cfg.Choices, prev.Choices):
		m.reload()
	}
}

// ConfigLoader reads the choices file when one is configured and the inline
// choices otherwise
func ConfigLoader(cfg *config.Config) ChoiceLoader {
	if cfg.ChoicesFile == "" {
		return func() ([]domain.Choice, error) {
			return cfg.DomainChoices(), nil
		}
	}
	path := cfg.ChoicesFile
	return func() ([]domain.Choice, error) {
		return logic.LoadChoicesFile(path)
	}
}

func (m *Model) resizeWidget() {
	width := m.config.UI.Width
	if width <= 0 {
		width = views.DefaultWidth
	}
	if m.width > 0 && width > m.width-2*originX {
		width = m.width - 2*originX
	}
	m.renderer.SetWidth(width)
}

func (m *Model) cycleLanguage() {
	supported := i18n.Supported()
	_, current := i18n.Lookup(m.lang.Tag())
	next := supported[0]
	if i := slices.Index(supported, current); i >= 0 {
		next = supported[(i+1)%len(supported)]
	}
	m.setLanguage(next.String())
}

func (m *Model) setLanguage(tag string) {
	if tag == m.lang.Tag() {
		return
	}
	m.lang.SetTag(tag)
	m.logger.Info("language changed", "tag", tag)
	if m.bus != nil {
		m.bus.Publish(eventbus.LanguageChangedEvent{Tag: tag})
	}
}

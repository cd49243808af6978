// Package coordinator implements the dropdown interaction state machine.
// A Dropdown is owned by one goroutine, the host's UI loop; none of its
// methods are safe for concurrent use.
package coordinator

import (
	"unicode"

	"github.com/charmbracelet/log"

	"dropdown/internal/domain"
	"dropdown/internal/i18n"
	"dropdown/internal/logic"
	"dropdown/internal/ui/input/types"
	"dropdown/internal/ui/services/announce"
	"dropdown/internal/ui/services/navigation"
	"dropdown/internal/ui/services/search"
	"dropdown/internal/ui/state"
)

// Options configures a Dropdown. Only Choices and Label are usually set by
// callers; every collaborator has a working default.
type Options struct {
	Label     string
	Choices   []domain.Choice
	Store     logic.ChoiceStore
	Language  LanguageContext
	Publisher Publisher
	Renderer  Renderer
	Scheduler Scheduler
	Clock     search.Clock
	Logger    *log.Logger
}

// Dropdown is a single-select combobox with a listbox popup
type Dropdown struct {
	store  logic.ChoiceStore
	state  *state.SelectionState
	search *search.Buffer

	label        string
	announcement string
	phrases      i18n.Phrases
	lang         string

	// highlightedID follows the highlighted choice across list mutations
	highlightedID string
	// generation increments on every close; deferred work from an older
	// generation is dropped
	generation uint64

	publisher   Publisher
	renderer    Renderer
	scheduler   Scheduler
	logger      *log.Logger
	unsubscribe func()
}

// New creates a Dropdown and subscribes it to its language context
func New(opts Options) *Dropdown {
	d := &Dropdown{
		store:     opts.Store,
		state:     state.NewSelectionState(),
		search:    search.NewBuffer(opts.Clock),
		label:     opts.Label,
		publisher: opts.Publisher,
		renderer:  opts.Renderer,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
	}
	if d.store == nil {
		d.store = logic.NewMemoryChoiceStore()
	}
	if d.publisher == nil {
		d.publisher = nopPublisher{}
	}
	if d.renderer == nil {
		d.renderer = nopRenderer{}
	}
	if d.scheduler == nil {
		d.scheduler = ImmediateScheduler{}
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	d.logger = d.logger.WithPrefix("dropdown")

	lang := opts.Language
	if lang == nil {
		lang = i18n.NewContext(i18n.DefaultTag.String())
	}
	d.applyLanguage(lang.Tag())
	d.unsubscribe = lang.Subscribe(d.onLanguageChanged)

	if len(opts.Choices) > 0 {
		d.logSkipped(d.store.ReplaceAll(opts.Choices))
	}
	d.revalidate()
	d.store.SetChangeFunction(d.onListChanged)

	d.render()
	return d
}

// Close tears the widget down: the listbox closes and the language
// subscription is released. Calling it twice is harmless.
func (d *Dropdown) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.closeList()
}

// HandleKey runs the transition for one keystroke and reports whether the
// key was consumed. Unconsumed keys (Tab, Escape while closed) should keep
// their default host behavior.
func (d *Dropdown) HandleKey(k types.Key) bool {
	switch k.Code {
	case types.KeyEnter, types.KeySpace:
		d.Activate()
		return true
	case types.KeyDown:
		d.arrow(navigation.DirectionDown)
		return true
	case types.KeyUp:
		d.arrow(navigation.DirectionUp)
		return true
	case types.KeyHome, types.KeyPageUp:
		d.jump(navigation.First)
		return true
	case types.KeyEnd, types.KeyPageDown:
		d.jump(navigation.Last)
		return true
	case types.KeyEscape:
		return d.Escape()
	case types.KeyTab:
		d.tab()
		return false
	case types.KeyRune:
		return d.typeAhead(k.Rune)
	}
	return false
}

// Activate handles Enter and Space on the trigger: a closed list opens, an
// open list commits its highlighted choice.
func (d *Dropdown) Activate() {
	if !d.state.Open {
		d.open()
		return
	}
	if d.state.HasHighlight() {
		d.commitIndex(d.state.HighlightedIndex)
	}
}

// ClickTrigger handles a pointer press on the trigger. Unlike the keyboard,
// an open list without a highlight closes.
func (d *Dropdown) ClickTrigger() {
	if d.state.Open && !d.state.HasHighlight() {
		d.closeList()
		d.render()
		return
	}
	d.Activate()
}

// SelectChoice commits the choice with id, as a click on an option does.
// Disabled choices and a closed list are ignored.
func (d *Dropdown) SelectChoice(id string) error {
	index := d.store.IndexOf(id)
	if index < 0 {
		err := &domain.NotFoundError{ID: id}
		d.logger.Error("no matching choice", "id", id, "err", err)
		return err
	}
	if !d.state.Open {
		return nil
	}
	if c, _ := d.store.At(index); c.Disabled {
		d.logger.Debug("ignoring disabled choice", "id", id)
		return nil
	}
	d.commitIndex(index)
	return nil
}

// Escape closes an open list and drops the highlight
func (d *Dropdown) Escape() bool {
	if !d.state.Open {
		return false
	}
	d.setHighlight(state.None)
	d.closeList()
	d.render()
	return true
}

// CloseList closes the listbox. The highlight is kept. Closing an already
// closed list only cancels pending continuations.
func (d *Dropdown) CloseList() {
	d.closeList()
	d.render()
}

// OutsideInteraction closes the list after a pointer event outside the widget
func (d *Dropdown) OutsideInteraction() {
	if !d.state.Open {
		return
	}
	d.CloseList()
}

// AddChoice appends a choice. Invalid or duplicate choices are logged and
// rejected without touching state.
func (d *Dropdown) AddChoice(c domain.Choice) error {
	if err := d.store.Add(c); err != nil {
		if _, dup := err.(*domain.DuplicateIDError); dup {
			d.logger.Warn("choice with the same id already exists", "id", c.ID)
		} else {
			d.logger.Error("invalid choice", "id", c.ID, "text", c.Text, "err", err)
		}
		return err
	}
	return nil
}

// RemoveChoice removes a choice. An unknown id is logged and ignored.
func (d *Dropdown) RemoveChoice(id string) error {
	if err := d.store.Remove(id); err != nil {
		d.logger.Warn("choice not found", "id", id)
		return err
	}
	return nil
}

// Rescan rebuilds the whole list from a fresh source scan
func (d *Dropdown) Rescan(choices []domain.Choice) {
	d.logSkipped(d.store.ReplaceAll(choices))
}

// RescanPayload decodes an external payload and rebuilds the list from it.
// A payload that does not parse leaves the current list untouched.
func (d *Dropdown) RescanPayload(data []byte, format domain.SourceFormat) error {
	choices, err := logic.DecodeChoices(data, format)
	if err != nil {
		d.logger.Error("error parsing choices", "format", format, "err", err)
		return err
	}
	d.Rescan(choices)
	return nil
}

// SetLabel changes the accessible label
func (d *Dropdown) SetLabel(label string) {
	d.label = label
	d.render()
}

// Value returns the selected choice text
func (d *Dropdown) Value() (string, bool) {
	c, ok := d.store.Selected()
	if !ok {
		return "", false
	}
	return c.Text, true
}

// Selected returns the selected choice
func (d *Dropdown) Selected() (domain.Choice, bool) {
	return d.store.Selected()
}

// Choices returns a copy of the current list
func (d *Dropdown) Choices() []domain.Choice {
	return d.store.Choices()
}

// State returns a copy of the selection state
func (d *Dropdown) State() state.SelectionState {
	return *d.state
}

// Announcement returns the current live region text
func (d *Dropdown) Announcement() string {
	return d.announcement
}

// Language returns the tag of the phrase table in use
func (d *Dropdown) Language() string {
	return d.lang
}

// Snapshot describes the widget for rendering
func (d *Dropdown) Snapshot() state.Snapshot {
	selectedID := ""
	if c, ok := d.store.Selected(); ok {
		selectedID = c.ID
	}
	return state.BuildSnapshot(d.store.Choices(), selectedID, *d.state, d.label, d.phrases.Placeholder, d.announcement, d.lang)
}

func (d *Dropdown) open() {
	d.state.Open = true
	if c, ok := d.store.Selected(); ok && c.Enabled() {
		index := d.store.IndexOf(c.ID)
		d.setHighlight(index)
		d.deferScroll()
	}
	d.render()
}

func (d *Dropdown) closeList() {
	d.state.Open = false
	d.generation++
}

func (d *Dropdown) arrow(dir navigation.Direction) {
	list := d.store.Choices()

	if d.state.Open {
		next := navigation.MoveHighlight(list, d.state.HighlightedIndex, dir)
		if next != d.state.HighlightedIndex && navigation.Valid(list, next) {
			d.setHighlight(next)
			d.announcement = announce.Highlighted(list[next], next, len(list), d.phrases)
			d.renderer.ScrollIntoView(next)
			d.render()
		}
		return
	}

	// Closed: roving selection without opening the list
	start := d.state.HighlightedIndex
	if start == state.None {
		if c, ok := d.store.Selected(); ok {
			start = d.store.IndexOf(c.ID)
		}
	}
	next, ok := navigation.CycleHighlight(list, start, dir)
	if !ok {
		return
	}
	if c, selected := d.store.Selected(); selected && c.ID == list[next].ID {
		return
	}
	d.commitIndex(next)
}

func (d *Dropdown) jump(target func([]domain.Choice) int) {
	list := d.store.Choices()
	index := target(list)
	if index == navigation.NotFound {
		return
	}
	d.setHighlight(index)
	d.render()

	generation := d.generation
	d.scheduler.Defer(func() {
		if generation != d.generation {
			return
		}
		current := d.state.HighlightedIndex
		c, ok := d.store.At(current)
		if !ok {
			return
		}
		d.announcement = announce.Highlighted(c, current, d.store.Len(), d.phrases)
		d.renderer.ScrollIntoView(current)
		d.render()
	})
}

func (d *Dropdown) tab() {
	if !d.state.Open {
		return
	}
	if d.state.HasHighlight() {
		d.commitIndex(d.state.HighlightedIndex)
		return
	}
	d.closeList()
	d.render()
}

func (d *Dropdown) typeAhead(r rune) bool {
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return false
	}
	buffer := d.search.Append(r)
	list := d.store.Choices()

	index := navigation.TypeAhead(list, buffer, d.state.HighlightedIndex)
	if index == navigation.NotFound {
		d.logger.Debug("type-ahead found no enabled match", "buffer", buffer)
		return true
	}

	d.state.Open = true
	d.setHighlight(index)
	d.announcement = announce.Highlighted(list[index], index, len(list), d.phrases)
	d.renderer.ScrollIntoView(index)
	d.render()
	return true
}

// commitIndex makes the choice at index the selection and closes the list.
// It is the only place that emits a ChangeEvent.
func (d *Dropdown) commitIndex(index int) {
	c, ok := d.store.At(index)
	if !ok {
		d.setHighlight(state.None)
		d.render()
		return
	}
	if err := d.store.SetSelected(c.ID); err != nil {
		d.logger.Error("failed to select choice", "id", c.ID, "err", err)
		return
	}

	d.state.PersistentHighlightedIndex = index
	d.setHighlight(state.None)
	d.announcement = announce.Selected(c, d.phrases)
	d.closeList()

	d.logger.Debug("choice committed", "id", c.ID, "value", c.Value)
	d.publisher.Publish(domain.ChangeEvent{Value: c.Text, ID: c.Value})
	d.render()
}

func (d *Dropdown) deferScroll() {
	generation := d.generation
	d.scheduler.Defer(func() {
		if generation != d.generation {
			return
		}
		if current := d.state.HighlightedIndex; current >= 0 && current < d.store.Len() {
			d.renderer.ScrollIntoView(current)
		}
	})
}

func (d *Dropdown) setHighlight(index int) {
	d.state.HighlightedIndex = index
	d.highlightedID = ""
	if c, ok := d.store.At(index); ok {
		d.highlightedID = c.ID
	}
}

// revalidate re-points every index at the current list. The highlight
// follows its choice or is dropped; the persistent index follows the
// selection.
func (d *Dropdown) revalidate() {
	if d.highlightedID != "" {
		index := d.store.IndexOf(d.highlightedID)
		c, ok := d.store.At(index)
		if ok && c.Enabled() {
			d.state.HighlightedIndex = index
		} else {
			d.setHighlight(state.None)
		}
	}

	if c, ok := d.store.Selected(); ok {
		d.state.PersistentHighlightedIndex = d.store.IndexOf(c.ID)
	} else {
		d.state.PersistentHighlightedIndex = state.None
	}
	d.state.Clamp(d.store.Len())
}

func (d *Dropdown) onListChanged() {
	d.revalidate()
	d.publisher.Publish(domain.ListChangedEvent{Length: d.store.Len()})
	d.render()
}

func (d *Dropdown) onLanguageChanged(tag string) {
	d.applyLanguage(tag)
	d.render()
}

func (d *Dropdown) applyLanguage(tag string) {
	phrases, matched := i18n.Lookup(tag)
	d.phrases = phrases
	d.lang = matched.String()
}

func (d *Dropdown) logSkipped(skipped []error) {
	for _, err := range skipped {
		d.logger.Warn("skipping choice", "err", err)
	}
}

func (d *Dropdown) render() {
	d.renderer.Render(d.Snapshot())
}
